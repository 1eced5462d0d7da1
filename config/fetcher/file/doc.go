// Package file reads and writes nsconf documents on the local filesystem.
//
// A Fetcher snapshots the document when it is built and serves that snapshot
// until Refresh re-reads it, so a Document loaded twice from the same Fetcher
// sees identical text. A Writer saves by renaming a sibling temporary file over
// the target, so a crash mid-save never leaves a half written document.
//
//	fetcher, err := file.NewFetcher("/etc/app/app.conf")()
//	doc, err := document.Load(fetcher)
//
//	writer, err := file.NewWriter("/etc/app/app.conf")()
//	err = doc.Save(writer)
//
// A missing document wraps os.ErrNotExist. Pointing either side at a directory
// yields ErrPathIsDirectory.
package file
