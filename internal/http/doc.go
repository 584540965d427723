// Package http wraps net/http for the two requests playlist-poster makes:
// one for the playlist page and one per album for its cover art.
//
// Every request carries the configured User-Agent, honours the caller's
// context and fails on any status other than 200.
//
//	client := http.NewClient(settings.UserAgent)
//	html, err := client.GetString(ctx, playlistURL)
//
// DownloadFile streams a response body to disk. Pass a callback to observe
// byte counts; the total is -1 when the server sends no Content-Length:
//
//	err := client.DownloadFile(ctx, artURL, tmpPath, func(written, total int64) {
//	    bar.Set(written, total)
//	})
//
// The same counting is available for any writer through ProgressWriter.
package http
