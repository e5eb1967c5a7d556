package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const citationSetXML = `<MedlineCitationSet>
<MedlineCitation Status="MEDLINE">
	<PMID>20000001</PMID>
	<DateCreated><Year>2020</Year><Month>01</Month><Day>02</Day></DateCreated>
	<Article PubModel="Print">
		<Journal><JournalIssue CitedMedium="Print"><PubDate><Year>2020</Year></PubDate></JournalIssue></Journal>
		<ArticleTitle>Minimal.</ArticleTitle>
		<Pagination><MedlinePgn>1-2</MedlinePgn></Pagination>
		<Language>eng</Language>
	</Article>
	<MedlineJournalInfo><MedlineTA>Min J</MedlineTA></MedlineJournalInfo>
</MedlineCitation>
<DeleteCitation><PMID>11111111</PMID></DeleteCitation>
</MedlineCitationSet>`

type result struct {
	stdout string
	logs   string
	err    error
}

// execute runs the command tree with a fresh metrics namespace so promauto
// registrations do not collide between tests.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("MEDLINE_METRICS_NAMESPACE", "test_cmd_"+strings.ReplaceAll(strings.ToLower(t.Name()), "/", "_"))

	var stdout, logs bytes.Buffer
	a := &app{logOutput: &logs}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)

	err := root.ExecuteContext(context.Background())
	if ferr := a.finish(); ferr != nil && err == nil {
		err = ferr
	}
	return result{stdout: stdout.String(), logs: logs.String(), err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidateCmd(t *testing.T) {
	good := writeFile(t, "good.xml", citationSetXML)
	bad := writeFile(t, "bad.xml", strings.Replace(citationSetXML, `Status="MEDLINE"`, `Status="Draft"`, 1))

	res := execute(t, "", "validate", good, bad)
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, errValidation)
	assert.Contains(t, res.err.Error(), "1 of 2 files")

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "OK\t"+good+"\tMedlineCitationSet\t1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "FAIL\t"+bad+"\t"))
	assert.Contains(t, lines[1], "Draft")

	assert.Contains(t, res.logs, `"command":"validate"`)
	assert.Contains(t, res.logs, `"run_id":"`)
}

func TestValidateCmd_RequiresFile(t *testing.T) {
	res := execute(t, "", "validate")
	assert.Error(t, res.err)
}

func TestConvertCmd_StdinToJSON(t *testing.T) {
	res := execute(t, citationSetXML, "convert", "--format", "json", "-")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"MedlineCitations"`)
	assert.Contains(t, res.stdout, `"20000001"`)
}

func TestConvertCmd_OutputFile(t *testing.T) {
	in := writeFile(t, "in.xml", citationSetXML)
	out := filepath.Join(t.TempDir(), "out.xml")

	res := execute(t, "", "convert", "-o", out, in)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<MedlineCitationSet xmlns="http://www.ncbi.nlm.nih.gov/eutils">`)
}

func TestConvertCmd_InvalidFormat(t *testing.T) {
	in := writeFile(t, "in.xml", citationSetXML)
	res := execute(t, "", "convert", "--format", "csv", in)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid output format")
}

func TestSummaryCmd(t *testing.T) {
	in := writeFile(t, "in.xml", citationSetXML)
	res := execute(t, "", "summary", in)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"canonical_id":"pubmed:20000001"`)
	assert.Contains(t, res.logs, `"papers":1`)
}

func TestPMIDsCmd(t *testing.T) {
	in := writeFile(t, "in.xml", citationSetXML)
	res := execute(t, "", "pmids", in)
	require.NoError(t, res.err)
	assert.Equal(t, "20000001\n-11111111\n", res.stdout)
}

func TestMetricsFile(t *testing.T) {
	in := writeFile(t, "in.xml", citationSetXML)
	metrics := filepath.Join(t.TempDir(), "medline.prom")

	res := execute(t, "", "--metrics-file", metrics, "pmids", in)
	require.NoError(t, res.err)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "test_cmd_testmetricsfile_documents_decoded_total")
}

func TestInvalidLogLevel(t *testing.T) {
	in := writeFile(t, "in.xml", citationSetXML)
	res := execute(t, "", "--log-level", "loud", "pmids", in)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid log level")
}

func TestDupesCmd(t *testing.T) {
	first := writeFile(t, "first.xml", citationSetXML)
	second := writeFile(t, "second.xml", citationSetXML)

	res := execute(t, "", "dupes", first, second)
	require.NoError(t, res.err)
	assert.Equal(t, "20000001\t20000001\tpmid\t1.00\n", res.stdout)
	assert.Contains(t, res.logs, `"duplicates":1`)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
