// Package ftpush provides upload and delete operations against an FTP server.
//
// It is a thin abstraction over the FTP STOR, DELE, and MDTM commands,
// intended to be injected where direct use of an FTP driver would make
// callers hard to test. There is no retry logic, no connection pooling, and
// no protocol state machine: every operation dials one connection, performs
// one exchange, and releases the connection before returning.
//
// # Basic Usage
//
// Create a client and upload a file:
//
//	client, err := ftpush.NewClient("ftp.example.com", "user", "secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Upload a string
//	err = client.UploadString(ctx, "hello", "greeting.txt")
//
//	// Upload a stream with progress reporting
//	err = client.UploadStream(ctx, f, size, "backup.tar",
//	    ftpush.WithProgress(func(ev ftpush.ProgressEvent) {
//	        fmt.Printf("%.1f%%\n", ev.Percent)
//	    }))
//
//	// Delete a remote file (succeeds when the file is already absent)
//	err = client.DeleteFile(ctx, "stale.txt")
//
// # Connection Flags
//
// Passive-mode negotiation, explicit TLS, keep-alive, transfer type, proxy
// traversal, and timeouts are configured with client options and handed to
// the underlying driver unchanged. The client performs no TLS or proxy work
// of its own.
//
// # Errors
//
// Blank or missing arguments fail with ErrInvalidArgument before any network
// activity. Transport failures propagate unmodified apart from mapping the
// common reply codes to ErrNotFound and ErrUnauthorized. DeleteFile swallows
// a failed existence probe and reports success for files that do not exist.
package ftpush
