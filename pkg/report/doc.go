// Package report is the pure formatting layer over a gap report: chat-style
// conversational text (markdown or plain), a UI-friendly structured summary,
// and fix extraction for batch application. It reads analyzer output and
// calls nothing else.
package report
