// Package generate provides the orchestration logic for turning an Apple
// Music playlist into a poster.
//
// # Manager
//
// The Manager coordinates the entire process:
//
//  1. Fetch the playlist page
//  2. Parse its songs and collate them into albums
//  3. Download cover art into the artwork cache
//  4. Compose the poster
//  5. Write the PNG, and optionally a legend
//
// # Basic Usage
//
//	cache, err := artcache.New(settings.CacheDir, http.NewClient(settings.UserAgent), settings.ToCacheOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	manager, err := generate.NewManager(settings, cache, func(event generate.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := manager.Initialize(ctx, "https://music.apple.com/gb/playlist/name/pl.u-abc"); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := manager.Render(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Callers that want to drop albums call SetAlbums between Initialize and
// Render.
//
// # Concurrency
//
// Artwork downloads run in parallel, bounded by
// settings.MaxConcurrentDownloads. A limit of 1 downloads one album at a
// time. The poster keeps playlist order whatever order downloads finish in.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// The callback may be invoked from several goroutines at once while
// artwork is downloading.
package generate
