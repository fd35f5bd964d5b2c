package routes

import (
	"os"
	"regexp"

	"github.com/ukaji3/storymatrix-go/pkg/storymatrix/models"
)

var (
	staticTestID  = regexp.MustCompile(`data-testid="([^"]+)"`)
	dynamicTestID = regexp.MustCompile("data-testid=\\{[`']([^`']+)[`']\\}")
)

// ExtractTestIDs returns the data-testid values of a page source. Static
// attributes come first, then template-literal ones, each in source order.
func ExtractTestIDs(src []byte) []models.TestID {
	var ids []models.TestID
	for _, m := range staticTestID.FindAllSubmatch(src, -1) {
		ids = append(ids, models.TestID{Value: string(m[1])})
	}
	for _, m := range dynamicTestID.FindAllSubmatch(src, -1) {
		ids = append(ids, models.TestID{Value: string(m[1]), Dynamic: true})
	}
	return ids
}

// ReadTestIDs reads a page file and extracts its data-testid values.
func ReadTestIDs(path string) ([]models.TestID, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractTestIDs(src), nil
}
