package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	ServiceName    = "Student Learning Assistant API"
	ServiceVersion = "1.0.0"
)

const MimeCSV = "text/csv"
