package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameDepositsConfirmed = "deposits_confirmed_total"
	MetricNameWithdrawals       = "withdrawals_total"
	MetricNameCluesGenerated    = "clues_generated_total"
	MetricNameAnswersGraded     = "answers_graded_total"
	MetricNameOracleFallbacks   = "oracle_fallbacks_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextDepositsConfirmed = "Total number of confirmed deposits"
	HelpTextWithdrawals       = "Total number of withdrawal attempts by outcome"
	HelpTextCluesGenerated    = "Total number of clues generated by difficulty"
	HelpTextAnswersGraded     = "Total number of answers graded by result"
	HelpTextOracleFallbacks   = "Total number of oracle failures recovered with local fallbacks"
)

// Label names
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelOutcome    = "outcome"
	LabelDifficulty = "difficulty"
	LabelResult     = "result"
	LabelOperation  = "operation"
)

// Withdrawal outcome label values
const (
	OutcomeConfirmed = "confirmed"
	OutcomeFailed    = "failed"
)

// Answer grading result label values
const (
	ResultCorrect   = "correct"
	ResultIncorrect = "incorrect"
)

// Oracle operation label values
const (
	OperationGenerate = "generate"
	OperationGrade    = "grade"
)

// HTTPLatencyBuckets covers the range from local handlers to oracle and
// ledger round trips.
var HTTPLatencyBuckets = []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
