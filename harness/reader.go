package harness

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/frontlook-admin/mcp-contract-tests/framework"
	"github.com/frontlook-admin/mcp-contract-tests/protocol"
)

// Tool replies can embed whole file listings, so lines may be far larger
// than bufio's default buffer. Lines beyond the cap are dropped without
// ever being held in memory whole.
const (
	readerChunkSize   = 64 * 1024
	readerMaxLineSize = 8 * 1024 * 1024
)

const logTextLimit = 300

// LineReader owns a child process's stdout. It runs as a goroutine, decodes
// each line, and stores every reply that carries an id. Lines that are not
// replies (log noise, malformed JSON, server notifications) are dropped, as
// are lines longer than the cap.
type LineReader struct {
	store  *ResultStore
	logger framework.Logger
	done   chan struct{}
}

// StartLineReader begins consuming r in the background. The reader stops
// when r is exhausted or closed.
func StartLineReader(r io.Reader, store *ResultStore, logger framework.Logger) *LineReader {
	if logger == nil {
		logger = framework.NullLogger()
	}
	lr := &LineReader{store: store, logger: logger, done: make(chan struct{})}
	go lr.consume(r)
	return lr
}

// Done is closed once the output stream has ended.
func (lr *LineReader) Done() <-chan struct{} {
	return lr.done
}

// consume reads r line by line until the stream ends. bufio.Scanner is not
// usable here: it treats one over-long line as a terminal error, and a
// reader that stops early loses every reply after that line. Over-long
// lines are swallowed chunk by chunk instead, and reading continues with
// the next line.
func (lr *LineReader) consume(r io.Reader) {
	defer close(lr.done)
	br := bufio.NewReaderSize(r, readerChunkSize)
	var line []byte
	discarding := false
	for {
		chunk, err := br.ReadSlice('\n')
		switch {
		case discarding:
			// drop the rest of the over-long line
		case len(line)+len(chunk) > readerMaxLineSize:
			lr.logger.Printf("Discarded output: line longer than %d bytes", readerMaxLineSize)
			line = line[:0]
			discarding = true
		default:
			line = append(line, chunk...)
		}

		switch err {
		case bufio.ErrBufferFull:
			// same line continues in the next chunk
		case nil:
			if discarding {
				discarding = false
			} else {
				lr.handleLine(trimLineEnding(line))
				line = line[:0]
			}
		case io.EOF:
			if !discarding && len(line) > 0 {
				lr.handleLine(trimLineEnding(line))
			}
			return
		default:
			lr.logger.Printf("Output stream ended: %s", err)
			return
		}
	}
}

func (lr *LineReader) handleLine(line []byte) {
	reply, ok := protocol.ParseReply(line)
	if !ok {
		lr.logger.Printf("Discarded output: %s", truncateForLog(string(line)))
		return
	}
	lr.logger.Printf("Received reply id=%s: %s", reply.ID, truncateForLog(string(line)))
	lr.store.Put(reply)
}

// trimLineEnding strips the trailing newline, and the carriage return
// before it that a Windows-built target produces.
func trimLineEnding(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

func truncateForLog(s string) string {
	if len(s) <= logTextLimit {
		return s
	}
	cut := logTextLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
