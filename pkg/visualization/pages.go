package visualization

import (
	"strings"

	"github.com/bosco-l/multipage-dashboard/pkg/page"
	"github.com/pkg/errors"
)

// PagesTable lists registered pages with their controls and the URL serving them.
func PagesTable(pages []page.Descriptor, urls []string) (*Table, error) {
	if len(pages) != len(urls) {
		return nil, errors.Errorf("got %d urls for %d pages", len(urls), len(pages))
	}
	rows := make([][]string, 0, len(pages))
	for i, d := range pages {
		rows = append(rows, []string{d.Name, d.Path, strings.Join(d.ControlIDs(), ", "), urls[i]})
	}
	return NewTable([]string{"Page", "Path", "Controls", "URL"}, rows)
}
