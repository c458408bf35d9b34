// Package domain holds the fixture dataset shapes served by vitalsum-exportd
package domain

// Header is the ignored first line of every data download
const Header = "patient_id,event_time,event_type,value"

// Download is one data file within an export: an id plus raw data lines.
// Lines are stored without the header; Body() prepends it
type Download struct {
	ID   string
	Rows []string
}

// Body renders the download as served over HTTP: header first, one row per
// line, trailing newline
func (d Download) Body() string {
	body := Header + "\n"
	for _, r := range d.Rows {
		body += r + "\n"
	}
	return body
}

// Dataset describes one fixture export and its ordered downloads
type Dataset struct {
	ExportID  string
	Downloads []Download
}

// DownloadIDs returns the download ids in serving order
func (d Dataset) DownloadIDs() []string {
	out := make([]string, len(d.Downloads))
	for i, dl := range d.Downloads {
		out[i] = dl.ID
	}
	return out
}

// Download returns the download with the given id
func (d Dataset) Download(id string) (Download, bool) {
	for _, dl := range d.Downloads {
		if dl.ID == id {
			return dl, true
		}
	}
	return Download{}, false
}

// CatalogPort is the read-only view the HTTP layer serves from
type CatalogPort interface {
	// Export returns the dataset for an export id
	Export(exportID string) (Dataset, bool)
	// IDs returns the known export ids
	IDs() []string
}
