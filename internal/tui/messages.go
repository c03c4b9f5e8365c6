package tui

// categorizeDoneMsg reports that an AI categorization finished for one
// transaction. The store has already applied the result by id.
type categorizeDoneMsg struct {
	id int64
}

// transactionAddedMsg reports the outcome of an add-transaction request.
type transactionAddedMsg struct {
	err error
	id  int64
}

// summaryMsg carries the SME ledger summary text.
type summaryMsg struct {
	text string
}

// adviceFragmentMsg carries one fragment of the streamed advisor reply. The
// seq ties it to the stream it came from so fragments of an abandoned stream
// can be dropped.
type adviceFragmentMsg struct {
	ch   <-chan string
	text string
	seq  int
}

// adviceDoneMsg signals the end of a streamed advisor reply.
type adviceDoneMsg struct {
	seq int
}
