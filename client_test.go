package ftpush

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/ftpush/internal/ftpconn"
)

func TestDestinationURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		server   string
		fileName string
		want     string
	}{
		{
			name:     "bare host",
			server:   "ftp.example.com",
			fileName: "a.txt",
			want:     "ftp://ftp.example.com/a.txt",
		},
		{
			name:     "host with scheme",
			server:   "ftp://ftp.example.com",
			fileName: "a.txt",
			want:     "ftp://ftp.example.com/a.txt",
		},
		{
			name:     "host with trailing slash",
			server:   "ftp://ftp.example.com/",
			fileName: "a.txt",
			want:     "ftp://ftp.example.com/a.txt",
		},
		{
			name:     "host with port",
			server:   "ftp.example.com:2121",
			fileName: "b.bin",
			want:     "ftp://ftp.example.com:2121/b.bin",
		},
		{
			name:     "host with base directory",
			server:   "ftp://ftp.example.com/incoming",
			fileName: "a.txt",
			want:     "ftp://ftp.example.com/incoming/a.txt",
		},
		{
			name:     "nested remote name",
			server:   "ftp.example.com",
			fileName: "reports/today.csv",
			want:     "ftp://ftp.example.com/reports/today.csv",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := destinationURL(tt.server, tt.fileName)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		server   string
		username string
		password string
	}{
		{name: "blank server", server: "", username: "u", password: "p"},
		{name: "whitespace server", server: "   ", username: "u", password: "p"},
		{name: "blank username", server: "ftp.example.com", username: "", password: "p"},
		{name: "blank password", server: "ftp.example.com", username: "u", password: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewClient(tt.server, tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNewClient_OptionError(t *testing.T) {
	t.Parallel()

	_, err := NewClient("ftp.example.com", "u", "p", WithProxyURL("::not-a-url"))
	require.Error(t, err)
}

func TestClient_Target(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		server   string
		fileName string
		wantAddr string
		wantPath string
	}{
		{
			name:     "default port",
			server:   "ftp.example.com",
			fileName: "a.txt",
			wantAddr: "ftp.example.com:21",
			wantPath: "a.txt",
		},
		{
			name:     "explicit port",
			server:   "ftp://ftp.example.com:2121",
			fileName: "a.txt",
			wantAddr: "ftp.example.com:2121",
			wantPath: "a.txt",
		},
		{
			name:     "base directory",
			server:   "ftp://ftp.example.com/incoming",
			fileName: "a.txt",
			wantAddr: "ftp.example.com:21",
			wantPath: "incoming/a.txt",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := NewClient(tt.server, "u", "p")
			require.NoError(t, err)

			addr, path, err := c.target(tt.fileName)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, addr)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestUploadString_MatchesUploadStream(t *testing.T) {
	t.Parallel()

	const content = "héllo, wörld"

	viaString := &fakeConn{}
	c := newTestClient(t, viaString, nil)
	require.NoError(t, c.UploadString(context.Background(), content, "a.txt"))

	viaStream := &fakeConn{}
	c = newTestClient(t, viaStream, nil)
	require.NoError(t, c.UploadStream(context.Background(),
		bytes.NewReader([]byte(content)), int64(len(content)), "a.txt"))

	assert.Equal(t, []byte(content), viaString.stored["a.txt"])
	assert.Equal(t, viaStream.stored["a.txt"], viaString.stored["a.txt"])
}

func TestUploadString_Validation(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	var dials int
	c := newTestClient(t, conn, &dials)

	err := c.UploadString(context.Background(), "", "a.txt")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = c.UploadString(context.Background(), "content", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Zero(t, dials, "validation failures must not touch the network")
}

func TestUploadStream_Validation(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	var dials int
	c := newTestClient(t, conn, &dials)

	err := c.UploadStream(context.Background(), nil, 4, "a.txt")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = c.UploadStream(context.Background(), bytes.NewReader(nil), -1, "a.txt")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = c.UploadStream(context.Background(), bytes.NewReader([]byte("x")), 1, "  ")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Zero(t, dials)
}

func TestUploadStream_DialConfig(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	var gotCfg ftpconn.Config
	c, err := NewClient("ftp.example.com", "u", "p",
		WithTimeout(5*time.Second),
		WithDisabledEPSV(true),
		WithKeepAlive(30*time.Second),
		WithASCIIMode(true),
		WithProxy(func(network, address string) (net.Conn, error) {
			return nil, errors.New("not dialed in tests")
		}),
	)
	require.NoError(t, err)
	c.dial = func(_ context.Context, cfg ftpconn.Config) (ftpconn.Conn, error) {
		gotCfg = cfg
		return conn, nil
	}

	require.NoError(t, c.UploadStream(context.Background(),
		bytes.NewReader([]byte("x")), 1, "a.txt"))

	assert.Equal(t, "ftp.example.com:21", gotCfg.Addr)
	assert.Equal(t, "u", gotCfg.Username)
	assert.Equal(t, "p", gotCfg.Password)
	assert.Equal(t, 5*time.Second, gotCfg.Timeout)
	assert.True(t, gotCfg.DisableEPSV)
	assert.Equal(t, 30*time.Second, gotCfg.KeepAlive)
	assert.True(t, gotCfg.ASCIIMode)
	assert.NotNil(t, gotCfg.DialFunc)
}

func TestWithProxyURL_SetsDialFunc(t *testing.T) {
	t.Parallel()

	c, err := NewClient("ftp.example.com", "u", "p",
		WithProxyURL("socks5://localhost:1080"))
	require.NoError(t, err)
	assert.NotNil(t, c.proxyDial)
}

func TestUploadStream_Progress(t *testing.T) {
	t.Parallel()

	const (
		size      = 3 << 20
		threshold = 1 << 20
	)

	conn := &fakeConn{}
	c := newTestClient(t, conn, nil)

	var events []ProgressEvent
	err := c.UploadStream(context.Background(),
		bytes.NewReader(make([]byte, size)), size, "big.bin",
		WithProgress(func(ev ProgressEvent) { events = append(events, ev) }),
		WithProgressThreshold(threshold),
	)
	require.NoError(t, err)

	require.Len(t, events, 3)
	var sum int64
	for i, ev := range events {
		assert.Equal(t, int64(i+1), ev.Seq)
		assert.Equal(t, int64(threshold), ev.DeltaBytes)
		assert.Equal(t, int64(size), ev.TotalBytes)
		sum += ev.DeltaBytes
	}
	assert.Equal(t, int64(size), sum)

	final := events[len(events)-1]
	assert.Equal(t, int64(size), final.BytesTransferred)
	assert.InDelta(t, 100.0, final.Percent, 1e-9)
}

func TestUploadStream_ProgressUnevenThreshold(t *testing.T) {
	t.Parallel()

	const (
		size      = 10000
		threshold = 3000
	)

	conn := &fakeConn{}
	c := newTestClient(t, conn, nil)

	var events []ProgressEvent
	err := c.UploadStream(context.Background(),
		bytes.NewReader(make([]byte, size)), size, "odd.bin",
		WithProgress(func(ev ProgressEvent) { events = append(events, ev) }),
		WithProgressThreshold(threshold),
	)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	var sum int64
	for i, ev := range events {
		assert.Equal(t, int64(i+1), ev.Seq)
		sum += ev.DeltaBytes
	}
	assert.Equal(t, int64(size), sum)
	assert.Equal(t, int64(size), events[len(events)-1].BytesTransferred)
	assert.InDelta(t, 100.0, events[len(events)-1].Percent, 1e-9)
}

func TestUploadStream_NoCallbackNoWrapping(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	c := newTestClient(t, conn, nil)

	src := bytes.NewReader([]byte("payload"))
	require.NoError(t, c.UploadStream(context.Background(), src, 7, "a.txt"))
	assert.Equal(t, []byte("payload"), conn.stored["a.txt"])
}

func TestUploadStream_StorErrorPropagates(t *testing.T) {
	t.Parallel()

	storErr := errors.New("552 quota exceeded")
	conn := &fakeConn{storErr: storErr}
	c := newTestClient(t, conn, nil)

	err := c.UploadStream(context.Background(), bytes.NewReader([]byte("x")), 1, "a.txt")
	assert.ErrorIs(t, err, storErr)
	assert.True(t, conn.closed, "connection must be released on error paths")
}

func TestUploadStream_DialErrorPropagates(t *testing.T) {
	t.Parallel()

	dialErr := errors.New("connection refused")
	c, err := NewClient("ftp.example.com", "u", "p")
	require.NoError(t, err)
	c.dial = func(context.Context, ftpconn.Config) (ftpconn.Conn, error) {
		return nil, dialErr
	}

	err = c.UploadStream(context.Background(), bytes.NewReader([]byte("x")), 1, "a.txt")
	assert.ErrorIs(t, err, dialErr)
}

func TestUploadStream_DoesNotCloseSource(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	c := newTestClient(t, conn, nil)

	src := &closableReader{Reader: bytes.NewReader([]byte("data"))}
	require.NoError(t, c.UploadStream(context.Background(), src, 4, "a.txt"))
	assert.False(t, src.closed, "the caller owns the source stream")
	assert.True(t, conn.closed)
}

func TestDeleteFile_Validation(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	var dials int
	c := newTestClient(t, conn, &dials)

	err := c.DeleteFile(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, dials)
}

func TestDeleteFile_AbsentFile(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{modTimeErr: ErrNotFound}
	c := newTestClient(t, conn, nil)

	require.NoError(t, c.DeleteFile(context.Background(), "gone.txt"))
	assert.Equal(t, []string{"mdtm gone.txt"}, conn.calls)
	assert.True(t, conn.closed)
}

func TestDeleteFile_ExistingFile(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	c := newTestClient(t, conn, nil)

	require.NoError(t, c.DeleteFile(context.Background(), "old.txt"))
	assert.Equal(t, []string{"mdtm old.txt", "dele old.txt"}, conn.calls)
	assert.True(t, conn.closed)
}

func TestDeleteFile_DeleteErrorPropagates(t *testing.T) {
	t.Parallel()

	deleteErr := errors.New("450 file busy")
	conn := &fakeConn{deleteErr: deleteErr}
	c := newTestClient(t, conn, nil)

	err := c.DeleteFile(context.Background(), "busy.txt")
	assert.ErrorIs(t, err, deleteErr)
	assert.Equal(t, []string{"mdtm busy.txt", "dele busy.txt"}, conn.calls)
	assert.True(t, conn.closed)
}

// newTestClient returns a client whose transport is the given fake
// connection. When dials is non-nil it counts dial attempts.
func newTestClient(t *testing.T, conn *fakeConn, dials *int) *Client {
	t.Helper()
	c, err := NewClient("ftp.example.com", "u", "p")
	require.NoError(t, err)
	c.dial = func(context.Context, ftpconn.Config) (ftpconn.Conn, error) {
		if dials != nil {
			*dials++
		}
		return conn, nil
	}
	return c
}

// fakeConn is an in-memory ftpconn.Conn recording the commands issued.
type fakeConn struct {
	stored     map[string][]byte
	storErr    error
	modTimeErr error
	deleteErr  error
	calls      []string
	closed     bool
}

func (f *fakeConn) Store(path string, src io.Reader) error {
	f.calls = append(f.calls, "stor "+path)
	if f.storErr != nil {
		return f.storErr
	}
	// Fixed-size reads keep the copy loop deterministic for progress tests.
	buf := make([]byte, 4096)
	var data []byte
	for {
		n, err := src.Read(buf)
		data = append(data, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if f.stored == nil {
		f.stored = make(map[string][]byte)
	}
	f.stored[path] = data
	return nil
}

func (f *fakeConn) ModTime(path string) (time.Time, error) {
	f.calls = append(f.calls, "mdtm "+path)
	if f.modTimeErr != nil {
		return time.Time{}, f.modTimeErr
	}
	return time.Now(), nil
}

func (f *fakeConn) Delete(path string) error {
	f.calls = append(f.calls, "dele "+path)
	return f.deleteErr
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

type closableReader struct {
	io.Reader
	closed bool
}

func (r *closableReader) Close() error {
	r.closed = true
	return nil
}
