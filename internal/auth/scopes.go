package auth

// Known OAuth scopes used by the summary API.
const (
	ScopeSummariesWrite = "summaries:write"
	ScopeSummariesRead  = "summaries:read"
)
