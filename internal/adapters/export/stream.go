package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"

	perr "vitalsum/internal/platform/errors"
)

// maxLineSize bounds a single data line; rows are tiny but a runaway line
// should fail loudly instead of truncating silently
const maxLineSize = 1 * 1024 * 1024

// DataStream is a forward-only, single-pass line stream over one download.
// The first (header) line has already been discarded by OpenData.
// Re-reading requires re-opening the stream
type DataStream struct {
	rc    io.ReadCloser
	sc    *bufio.Scanner
	err   error
	lines int
	bytes int64
}

// OpenData opens the data stream for one download id and discards exactly one
// leading header line, unconditionally and without validating its content
func (c *Client) OpenData(ctx context.Context, exportID, downloadID string) (*DataStream, error) {
	url := fmt.Sprintf("%s/export/%s/%s/data", c.opts.BaseURL, exportID, downloadID)
	c.log.Debug().Str("url", url).Msg("opening data stream")

	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, perr.Networkf("download %s/%s: unexpected status %d", exportID, downloadID, resp.StatusCode)
	}

	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	ds := &DataStream{rc: resp.Body, sc: sc}

	// header line; an empty body just yields EOF on the first Next
	if sc.Scan() {
		ds.bytes += int64(len(sc.Bytes()) + 1)
	} else if err := sc.Err(); err != nil {
		_ = resp.Body.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeNetwork, "read header for %s/%s", exportID, downloadID)
	}
	return ds, nil
}

// Next returns the next raw line; io.EOF when the stream is exhausted.
// Read failures map to the network error code and are sticky
func (ds *DataStream) Next() (string, error) {
	if ds.err != nil {
		return "", ds.err
	}
	if !ds.sc.Scan() {
		if err := ds.sc.Err(); err != nil {
			ds.err = perr.Wrap(err, perr.ErrorCodeNetwork, "read data stream")
			return "", ds.err
		}
		ds.err = io.EOF
		return "", io.EOF
	}
	line := ds.sc.Text()
	ds.lines++
	ds.bytes += int64(len(line) + 1) // include newline
	return line, nil
}

// Close releases the underlying response body
func (ds *DataStream) Close() error {
	return ds.rc.Close()
}

// Stats returns the number of data lines yielded and total bytes read so far
func (ds *DataStream) Stats() (lines int, bytes int64) {
	return ds.lines, ds.bytes
}
