package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/conllspan/bracket"
	"github.com/revelaction/conllspan/span"
	"github.com/revelaction/conllspan/storage/filesystem"
)

const (
	docFixture   = "../../conll/testdata/wsj_0001.json"
	conllFixture = "../../conll/testdata/wsj_0001.conll"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}
	err := newApp(ui).Run(append([]string{"conllspan", "--log-level", "error"}, args...))
	return out.String(), errOut.String(), err
}

func corefFile(t *testing.T, dir, name string, coref ...string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("#begin document (d); part 000\n")
	for i, c := range coref {
		fmt.Fprintf(&b, "d\t0\t%d\tw\tNN\t*\t-\t-\t-\t-\t*\t%s\n", i, c)
	}
	b.WriteString("\n#end document\n")

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func copyFixture(t *testing.T, dst string) {
	t.Helper()

	data, err := os.ReadFile(docFixture)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0644))
}

func TestScore(t *testing.T) {
	dir := t.TempDir()
	pred := corefFile(t, dir, "pred.conll", "(1", "1)", "-", "-")
	gold := corefFile(t, dir, "gold.conll", "(1", "1)", "-", "(2)")

	out, _, err := run(t, "score", "--column", "coref", pred, gold)
	require.NoError(t, err)
	assert.Equal(t, "recall: 0.5\nprecision: 1.0\nf1: 0.6666666666666666\n", out)

	out, _, err = run(t, "score", "--column", "coref", "--missed", pred, gold)
	require.NoError(t, err)
	assert.Contains(t, out, "missed: 4-4\n")

	out, _, err = run(t, "score", "--column", "coref", "--format", "json", pred, gold)
	require.NoError(t, err)
	assert.Contains(t, out, `"recall":0.5`)
}

func TestScoreMissingArgs(t *testing.T) {
	_, errOut, err := run(t, "score", "only-one.conll")
	assert.ErrorIs(t, err, errMissingArgs)
	assert.Contains(t, errOut, "Usage: conllspan score [options] <pred> <gold>")
}

func TestScoreUnknownColumn(t *testing.T) {
	dir := t.TempDir()
	f := corefFile(t, dir, "a.conll", "-")

	_, _, err := run(t, "score", "--column", "srl", f, f)
	assert.Error(t, err)
}

func TestScoreUnbalanced(t *testing.T) {
	dir := t.TempDir()
	pred := corefFile(t, dir, "pred.conll", "1)")
	gold := corefFile(t, dir, "gold.conll", "(1)")

	_, _, err := run(t, "score", "--column", "coref", pred, gold)
	assert.ErrorIs(t, err, bracket.ErrUnbalancedBrackets)
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "wsj_0001.json")
	copyFixture(t, src)

	_, errOut, err := run(t, "convert", src)
	require.NoError(t, err)
	assert.Contains(t, errOut, "target_file = "+src+".conll")

	got, err := os.ReadFile(src + ".conll")
	require.NoError(t, err)
	want, err := os.ReadFile(conllFixture)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	target := filepath.Join(dir, "nomention.conll")
	_, _, err = run(t, "convert", "--no-mention", src, target)
	require.NoError(t, err)
	got, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.NotContains(t, string(got), "(4")
}

func TestConvertMissingArgs(t *testing.T) {
	_, errOut, err := run(t, "convert")
	assert.ErrorIs(t, err, errMissingArgs)
	assert.Contains(t, errOut, "Usage: conllspan convert")
}

func TestConvertDir(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, filepath.Join(dir, "a.json"))
	bad := `{"docId":"bad","sentences":[{"parse":"(ROOT (X y))","tokens":[]}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(bad), 0644))

	_, _, err := run(t, "convert-dir", "--no-bar", dir)
	assert.ErrorIs(t, err, bracket.ErrMalformedParseTree)

	out, _, err := run(t, "convert-dir", "--no-bar", "--keep-going", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Converted 1 docs")
	assert.Contains(t, out, "skipped 1")

	_, err = os.Stat(filepath.Join(dir, "a.json.conll"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "bad.json.conll"))
	assert.True(t, os.IsNotExist(err))
}

func TestConvertDirInvalidMention(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, filepath.Join(dir, "a.json"))
	bad := `{"docId":"badmention","corefs":{"1":[{"sentNum":0,"startIndex":1,"endIndex":2}]},` +
		`"sentences":[{"parse":"(ROOT (X y))","tokens":[{"index":1,"word":"y","ner":"O"}]}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "badmention.json"), []byte(bad), 0644))

	_, _, err := run(t, "convert-dir", "--no-bar", dir)
	assert.ErrorIs(t, err, span.ErrInvalidSpan)
	assert.ErrorContains(t, err, "badmention")

	out, _, err := run(t, "convert-dir", "--no-bar", "--keep-going", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Converted 1 docs")
	assert.Contains(t, out, "skipped 1")

	_, err = os.Stat(filepath.Join(dir, "badmention.json.conll"))
	assert.True(t, os.IsNotExist(err))
}

func TestConvertDirEnv(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	copyFixture(t, filepath.Join(dir, "a.json"))
	t.Setenv(envDocPath, dir)

	_, _, err := run(t, "convert-dir", "--no-bar", "--out", out)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "a.json.conll"))
	assert.NoError(t, err)
}

func TestImportExportDoc(t *testing.T) {
	src := t.TempDir()
	copyFixture(t, filepath.Join(src, "a.json"))
	db := filepath.Join(t.TempDir(), "docs.db")

	out, _, err := run(t, "import-doc", "--no-bar", src, db)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully imported 1 docs")

	out, _, err = run(t, "import-doc", "--no-bar", src, db)
	require.NoError(t, err)
	assert.Contains(t, out, "skipped 1 duplicates")

	out, _, err = run(t, "ls-doc", db)
	require.NoError(t, err)
	assert.Equal(t, "📖 1 a.json\n", out)

	dst := t.TempDir()
	out, _, err = run(t, "export-doc", "--no-bar", db, dst)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully exported 1 docs")

	doc, err := filesystem.ReadDoc(filepath.Join(dst, "a.json"))
	require.NoError(t, err)
	assert.Equal(t, "wsj_0001", doc.DocId)
	assert.Len(t, doc.Sentences, 2)
}

func TestMissed(t *testing.T) {
	dir := t.TempDir()
	pred := corefFile(t, dir, "pred.conll", "(1", "1)", "-", "-")
	gold := corefFile(t, dir, "gold.conll", "(1", "1)", "-", "(2)")

	logs := filepath.Join(dir, "logs")
	require.NoError(t, os.Mkdir(logs, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(logs, "all.txt.new"), []byte(`[[[0,0,3,4], null], [[0,0,0,2], "found"]]`), 0644))

	rules := filepath.Join(dir, "rules.yaml")
	cfg := fmt.Sprintf("dir: %s\nfiles:\n  - all.txt.new\n  - nested.txt.new\n", logs)
	require.NoError(t, os.WriteFile(rules, []byte(cfg), 0644))

	out, _, err := run(t, "missed", "--rules", rules, pred, gold)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "doc_id: 0\nsent_id: 0\nbidx: 3\neidx: 4\n"), out)
	assert.Contains(t, out, "d\t0\t3\tw\tNN\t*\t-\t-\t-\t-\t*\t(2)")
	assert.Contains(t, out, "\n\nall.txt.new\n\n")
	assert.NotContains(t, out, "found")

	t.Setenv(envRules, rules)
	out, _, err = run(t, "missed", "--format", "json", pred, gold)
	require.NoError(t, err)
	assert.Contains(t, out, `"log":"all.txt.new"`)
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.json")
	copyFixture(t, src)

	out, _, err := run(t, "stat", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Num docs 1, num sentences 2")

	out, _, err = run(t, "stat", "--doc", "0", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Num docs 1")

	_, _, err = run(t, "stat", filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "conllspan version dev (commit: none)\n", out)
}

func TestBadLogLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	err := newApp(UI{Out: &out, Err: &errOut}).Run([]string{"conllspan", "--log-level", "loud", "version"})
	assert.ErrorContains(t, err, "unknown log level")
}
