package web_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-analyzer/internal/services"
	"alfredoptarigan/interview-analyzer/web"
)

func TestExampleReportsMatchSchema(t *testing.T) {
	validator := services.NewReportValidator()
	static := web.StaticFS()

	for i := 1; i <= 4; i++ {
		name := fmt.Sprintf("/reports/report%d.json", i)
		t.Run(name, func(t *testing.T) {
			f, err := static.Open(name)
			require.NoError(t, err)
			defer f.Close()

			data, err := io.ReadAll(f)
			require.NoError(t, err)

			_, err = validator.Validate(data)
			assert.NoError(t, err)
		})
	}
}

func TestViewsLoad(t *testing.T) {
	views := web.NewViews()
	require.NoError(t, views.Load())
}
