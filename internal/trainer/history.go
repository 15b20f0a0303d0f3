package trainer

// HistoryCapacity bounds the analysis history ring.
const HistoryCapacity = 10

// HistoryLog keeps the most recent analysis results, newest first.
// When full, inserting evicts the oldest entry.
type HistoryLog struct {
	entries []AnalysisResult
}

// NewHistoryLog returns an empty log.
func NewHistoryLog() *HistoryLog {
	return &HistoryLog{}
}

// Add prepends a result, evicting the oldest entry at capacity.
func (h *HistoryLog) Add(result AnalysisResult) {
	h.entries = append([]AnalysisResult{result}, h.entries...)
	if len(h.entries) > HistoryCapacity {
		h.entries = h.entries[:HistoryCapacity]
	}
}

// Entries returns the results newest first. The returned slice is a
// copy.
func (h *HistoryLog) Entries() []AnalysisResult {
	out := make([]AnalysisResult, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of stored results.
func (h *HistoryLog) Len() int {
	return len(h.entries)
}

// Clear drops all entries.
func (h *HistoryLog) Clear() {
	h.entries = nil
}
