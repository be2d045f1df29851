package ds

// ExportInfo результат выгрузки отфильтрованной выборки в MinIO
type ExportInfo struct {
	Bucket string `json:"bucket"`
	Object string `json:"object"`
	URL    string `json:"url"`
	Rows   int    `json:"rows"`
}
