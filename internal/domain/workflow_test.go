package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jsguard.dev/pkg/jsguard/internal/adapter"
	adaptermocks "jsguard.dev/pkg/jsguard/internal/adapter/mocks"
	"jsguard.dev/pkg/jsguard/internal/domain"
	m "jsguard.dev/pkg/jsguard/internal/model"
	"jsguard.dev/pkg/jsguard/internal/report"
)

func newTestWorkflow(ui testUI, store adapter.ReportStore) domain.Workflow {
	fs := adapter.NewLocalSourceFSAdapter()
	walker := domain.NewWalker(fs, domain.NewScanner(fs, domain.DefaultRegistry()), ui)

	return domain.NewWorkflow(fs, store, ui, walker)
}

func TestWorkflow_Scan_InvalidRoot(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")
	file := filepath.Join(dir, "file.js")
	writeFile(t, file, "eval(x)\n")

	for _, root := range []string{missing, file} {
		t.Run(filepath.Base(root), func(t *testing.T) {
			ui := newTestUI()
			csvPath := filepath.Join(dir, "out.csv")
			textPath := filepath.Join(dir, "out.txt")

			err := newTestWorkflow(ui, adapter.NewReportStore()).Scan(context.Background(), domain.ScanArgs{
				Root:       m.Path(root),
				TextOutput: m.Path(textPath),
				CSVOutput:  m.Path(csvPath),
			})

			require.ErrorIs(t, err, domain.ErrInvalidRoot)
			assert.Equal(t, root+" is not a valid directory", err.Error())
			assert.Empty(t, ui.out.String())
			assert.NoFileExists(t, csvPath)
			assert.NoFileExists(t, textPath)
		})
	}
}

func TestWorkflow_Scan_ConsoleScenario(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.js"), "import x from 'y';\n\nconst x = eval(userInput);\n")

	ui := newTestUI()
	err := newTestWorkflow(ui, adapter.NewReportStore()).Scan(context.Background(), domain.ScanArgs{Root: m.Path(root)})
	require.NoError(t, err)

	out := ui.out.String()
	assert.True(t, strings.HasPrefix(out, "Scanning directory: "+root+"\n\n"))
	assert.Contains(t, out, "const x = eval(userInput);")
	assert.Contains(t, out, "Total Issues Found: 1")
}

func TestWorkflow_Scan_ZeroMatches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "notes.txt"), "eval(x)\n")

	out := t.TempDir()
	csvPath := filepath.Join(out, "report.csv")
	xlsxPath := filepath.Join(out, "report.xlsx")
	textPath := filepath.Join(out, "report.txt")

	ui := newTestUI()
	err := newTestWorkflow(ui, adapter.NewReportStore()).Scan(context.Background(), domain.ScanArgs{
		Root:       m.Path(root),
		TextOutput: m.Path(textPath),
		CSVOutput:  m.Path(csvPath),
		XLSXOutput: m.Path(xlsxPath),
	})
	require.NoError(t, err)

	assert.NoFileExists(t, csvPath)
	assert.NoFileExists(t, xlsxPath)

	text, err := os.ReadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, report.NoIssuesMessage+"\n", string(text))

	assert.Contains(t, ui.out.String(), "Report successfully exported to "+textPath)
	assert.Contains(t, ui.out.String(), "No issues to export to CSV.")
	assert.Contains(t, ui.out.String(), "No issues to export to XLSX.")
	assert.NotContains(t, ui.out.String(), "Total Issues Found")
}

func TestWorkflow_Scan_ZeroMatchesConsole(t *testing.T) {
	ui := newTestUI()
	err := newTestWorkflow(ui, adapter.NewReportStore()).Scan(context.Background(), domain.ScanArgs{Root: m.Path(t.TempDir())})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(ui.out.String(), report.NoIssuesMessage+"\n"))
}

func TestWorkflow_Scan_CSVRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.js"), "fetch(localStorage.url)\n")
	writeFile(t, filepath.Join(root, "lib", "b.tsx"), "el.innerHTML = \"<b>, x</b>\";\n")

	csvPath := filepath.Join(t.TempDir(), "report.csv")

	ui := newTestUI()
	err := newTestWorkflow(ui, adapter.NewReportStore()).Scan(context.Background(), domain.ScanArgs{
		Root:      m.Path(root),
		CSVOutput: m.Path(csvPath),
	})
	require.NoError(t, err)

	f, err := os.Open(csvPath)
	require.NoError(t, err)

	defer func() { _ = f.Close() }()

	got, err := report.ReadCSV(f)
	require.NoError(t, err)

	assert.ElementsMatch(t, []m.Match{
		{File: m.Path(filepath.Join(root, "a.js")), Issue: "fetch()", Line: 1, Code: "fetch(localStorage.url)"},
		{File: m.Path(filepath.Join(root, "a.js")), Issue: "localStorage", Line: 1, Code: "fetch(localStorage.url)"},
		{File: m.Path(filepath.Join(root, "lib", "b.tsx")), Issue: "innerHTML", Line: 1, Code: "el.innerHTML = \"<b>, x</b>\";"},
	}, got)

	assert.NotContains(t, ui.out.String(), "Total Issues Found", "file output suppresses the console table")
}

func TestWorkflow_Scan_OutputFailureDoesNotStopOtherRenderers(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.js"), "eval(x)\n")

	store := adaptermocks.NewMockReportStore(t)
	store.On("SaveText", m.Path("/ro/out.txt"), mock.Anything).Return(errors.New("read-only file system"))
	store.On("SaveCSV", m.Path("out.csv"), mock.MatchedBy(func(matches []m.Match) bool {
		return len(matches) == 1 && matches[0].Issue == "eval()"
	})).Return(nil)

	ui := newTestUI()
	err := newTestWorkflow(ui, store).Scan(context.Background(), domain.ScanArgs{
		Root:       m.Path(root),
		TextOutput: "/ro/out.txt",
		CSVOutput:  "out.csv",
	})
	require.NoError(t, err)

	assert.Equal(t, "Error: writing text report to /ro/out.txt: read-only file system\n", ui.errOut.String())
	assert.Contains(t, ui.out.String(), "Report successfully exported to out.csv")
	assert.NotContains(t, ui.out.String(), "Report successfully exported to /ro/out.txt")
}

func TestScanArgs_WritesFiles(t *testing.T) {
	assert.False(t, domain.ScanArgs{Root: "."}.WritesFiles())
	assert.True(t, domain.ScanArgs{TextOutput: "a"}.WritesFiles())
	assert.True(t, domain.ScanArgs{CSVOutput: "a"}.WritesFiles())
	assert.True(t, domain.ScanArgs{XLSXOutput: "a"}.WritesFiles())
}
