package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
)

// maxLineSize bounds a single newline-delimited JSON message (16 MiB),
// large enough for whole-note payloads.
const maxLineSize = 16 << 20

// ServeStdio runs the server over newline-delimited JSON on a reader/writer
// pair, normally stdin and stdout. It returns when the input closes or the
// context is cancelled. Responses are serialized through a single writer
// lock so concurrent handlers cannot interleave output.
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	encoder := json.NewEncoder(w)
	var writeMu sync.Mutex

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			writeMu.Lock()
			encodeErr := encoder.Encode(errorResponse(nil, codeParseError, "parse error: invalid JSON"))
			writeMu.Unlock()
			if encodeErr != nil {
				return encodeErr
			}
			continue
		}

		resp := s.Handle(ctx, &req)
		if resp == nil {
			continue
		}
		writeMu.Lock()
		err := encoder.Encode(resp)
		writeMu.Unlock()
		if err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
