package streak

// State is the persisted streak. LastActiveDate is YYYY-MM-DD or empty when
// the streak was never recorded.
type State struct {
	Count          int    `json:"count"`
	LastActiveDate string `json:"lastActiveDate"`
}
