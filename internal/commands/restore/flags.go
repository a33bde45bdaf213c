package restore

const (
	flagArchive      = "archive"
	flagArchiveUsage = "Specify the path of the replication kit's database archive dump"

	flagGzip      = "gzip"
	flagGzipUsage = "Treat the archive as gzip-compressed"

	flagNSInclude      = "ns-include"
	flagNSIncludeUsage = `Restore only the namespaces matching the given pattern (e.g. "smartshark.*")`

	flagDrop      = "drop"
	flagDropUsage = "Drop existing collections before restoring them"
)
