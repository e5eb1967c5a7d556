// Package processor runs file-level operations over MEDLINE/PubMed XML documents:
// validation, re-encoding, JSON summaries and PMID listings.
package processor

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/segmentio/encoding/json"

	"github.com/helixir/medline/internal/dedup"
	"github.com/helixir/medline/internal/domain"
	"github.com/helixir/medline/internal/medline"
	"github.com/helixir/medline/internal/observability"
	"github.com/helixir/medline/internal/summary"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Output formats accepted by Convert.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
)

// Config holds processor configuration.
type Config struct {
	// Indent is the per-level indent for encoded output. Empty writes compact output.
	Indent string

	// Format is the Convert output format (xml, json). Defaults to xml.
	Format string

	// Metrics receives decode and encode counts. Nil disables metrics.
	Metrics *observability.Metrics

	// Stdin replaces os.Stdin for the "-" path.
	Stdin io.Reader

	// Dedup configures Duplicates.
	Dedup dedup.CheckerConfig
}

// Processor decodes documents from local files and writes derived output.
type Processor struct {
	indent  string
	format  string
	metrics *observability.Metrics
	stdin   io.Reader
	dedup   dedup.CheckerConfig
}

// New creates a Processor.
func New(cfg Config) *Processor {
	if cfg.Format == "" {
		cfg.Format = FormatXML
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	return &Processor{
		indent:  cfg.Indent,
		format:  cfg.Format,
		metrics: cfg.Metrics,
		stdin:   cfg.Stdin,
		dedup:   cfg.Dedup,
	}
}

// Document is a decoded and validated document.
type Document struct {
	// Path is the source path, "-" for stdin.
	Path string
	// Root is the root element name.
	Root string
	// Value is the decoded record, e.g. *medline.PubmedArticleSet.
	Value any
	// Records is the number of citations or articles in the document.
	Records int
	// Deleted holds PMIDs listed in a DeleteCitation, in document order.
	Deleted []string
}

// Result is the outcome of validating one file.
type Result struct {
	Path    string
	Root    string
	Records int
	Err     error
}

// OK reports whether the file decoded and validated.
func (r Result) OK() bool { return r.Err == nil }

// Open opens path for reading. "-" selects stdin; a ".gz" suffix is
// decompressed transparently.
func (p *Processor) Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(p.stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &gzipFile{Reader: zr, file: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	return errors.Join(g.Reader.Close(), g.file.Close())
}

// Decode reads, decodes and validates the document at path.
func (p *Processor) Decode(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := observability.LoggerFromContext(observability.WithDocumentPath(ctx, path))
	start := time.Now()

	rc, err := p.Open(path)
	if err != nil {
		p.recordFailure(err, start)
		return nil, err
	}
	defer rc.Close()

	v, err := medline.DecodeAny(rc)
	if err != nil {
		p.recordFailure(err, start)
		logger.Warn().Err(err).Str("kind", ErrorKind(err)).Msg("document rejected")
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	root, err := medline.RootName(v)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	doc := &Document{Path: path, Root: root, Value: v}
	switch d := v.(type) {
	case *medline.PubmedArticleSet:
		doc.Records = d.PubmedArticles.Len()
	case *medline.MedlineCitationSet:
		doc.Records = d.MedlineCitations.Len()
		if d.DeleteCitation != nil {
			doc.Deleted = d.DeleteCitation.Values()
		}
	case *medline.PubmedArticle, *medline.MedlineCitation:
		doc.Records = 1
	case *medline.DeleteCitation:
		doc.Deleted = d.Values()
	}

	if p.metrics != nil {
		p.metrics.RecordDecoded(root, doc.Records, len(doc.Deleted), time.Since(start).Seconds())
	}
	logger.Debug().
		Str("root", root).
		Int("records", doc.Records).
		Int("deleted", len(doc.Deleted)).
		Dur("duration", time.Since(start)).
		Msg("document decoded")

	return doc, nil
}

func (p *Processor) recordFailure(err error, start time.Time) {
	if p.metrics != nil {
		p.metrics.RecordDecodeFailed(ErrorKind(err), time.Since(start).Seconds())
	}
}

// Validate decodes every path and reports one Result per file. Files are
// processed in order; a cancelled context marks the remaining files failed.
func (p *Processor) Validate(ctx context.Context, paths []string) []Result {
	logger := observability.LoggerFromContext(ctx)
	results := make([]Result, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Path: path, Err: err})
			continue
		}
		doc, err := p.Decode(ctx, path)
		if err != nil {
			results = append(results, Result{Path: path, Err: err})
			continue
		}
		results = append(results, Result{Path: path, Root: doc.Root, Records: doc.Records})
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	logger.Info().Int("files", len(results)).Int("failed", failed).Msg("validation finished")

	return results
}

// Convert decodes the document at path and writes it back to w, as namespaced
// XML or as JSON depending on the configured format.
func (p *Processor) Convert(ctx context.Context, path string, w io.Writer) error {
	doc, err := p.Decode(ctx, path)
	if err != nil {
		return err
	}

	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", p.indent)
		if err := enc.Encode(doc.Value); err != nil {
			return fmt.Errorf("convert %s: %w", path, err)
		}
	case FormatXML:
		enc := medline.NewEncoder(w)
		enc.Indent("", p.indent)
		if err := enc.Encode(doc.Value); err != nil {
			return fmt.Errorf("convert %s: %w", path, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("convert %s: %w", path, err)
		}
		if p.metrics != nil {
			p.metrics.RecordEncoded(doc.Root)
		}
	default:
		return fmt.Errorf("convert %s: unknown output format %q", path, p.format)
	}
	return nil
}

// Summarize writes one JSON object per article or citation in the document at
// path and returns the number written.
func (p *Processor) Summarize(ctx context.Context, path string, w io.Writer) (int, error) {
	doc, err := p.Decode(ctx, path)
	if err != nil {
		return 0, err
	}

	papers, err := papersOf(doc, "summary")
	if err != nil {
		return 0, fmt.Errorf("summarize %s: %w", path, err)
	}

	logger := observability.LoggerFromContext(ctx)
	enc := json.NewEncoder(w)
	for i, paper := range papers {
		if err := enc.Encode(paper); err != nil {
			return i, fmt.Errorf("summarize %s: %w", path, err)
		}
		if !paper.HasIdentifier() {
			l := observability.WithCitationContext(logger, paper.PMID, i)
			l.Warn().Err(domain.ErrNoIdentifier).Msg("paper has no identifier")
		}
	}

	if p.metrics != nil {
		p.metrics.RecordSummaries(len(papers))
	}
	return len(papers), nil
}

// PMIDs writes one PMID per line for the document at path. PMIDs listed in a
// DeleteCitation are prefixed with "-". It returns the number of lines written.
func (p *Processor) PMIDs(ctx context.Context, path string, w io.Writer) (int, error) {
	doc, err := p.Decode(ctx, path)
	if err != nil {
		return 0, err
	}

	var pmids []string
	switch d := doc.Value.(type) {
	case *medline.PubmedArticleSet:
		for _, a := range d.PubmedArticles {
			pmids = append(pmids, strings.TrimSpace(a.PMID()))
		}
	case *medline.MedlineCitationSet:
		for _, c := range d.MedlineCitations {
			pmids = append(pmids, strings.TrimSpace(c.PMID.Value))
		}
	case *medline.PubmedArticle:
		pmids = append(pmids, strings.TrimSpace(d.PMID()))
	case *medline.MedlineCitation:
		pmids = append(pmids, strings.TrimSpace(d.PMID.Value))
	case *medline.DeleteCitation:
	default:
		return 0, fmt.Errorf("pmids %s: %w", path, domain.NewUnsupportedDocumentError("pmids", doc.Root))
	}
	for _, pmid := range doc.Deleted {
		pmids = append(pmids, "-"+strings.TrimSpace(pmid))
	}

	bw := bufio.NewWriter(w)
	for _, pmid := range pmids {
		bw.WriteString(pmid)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("pmids %s: %w", path, err)
	}
	return len(pmids), nil
}

// papersOf flattens the articles or citations of doc.
func papersOf(doc *Document, operation string) ([]*domain.Paper, error) {
	var papers []*domain.Paper
	switch d := doc.Value.(type) {
	case *medline.PubmedArticleSet:
		for _, a := range d.PubmedArticles {
			papers = append(papers, summary.FromArticle(a))
		}
	case *medline.MedlineCitationSet:
		for _, c := range d.MedlineCitations {
			papers = append(papers, summary.FromCitation(c))
		}
	case *medline.PubmedArticle:
		papers = append(papers, summary.FromArticle(*d))
	case *medline.MedlineCitation:
		papers = append(papers, summary.FromCitation(*d))
	default:
		return nil, domain.NewUnsupportedDocumentError(operation, doc.Root)
	}
	return papers, nil
}

// Duplicates checks every article or citation across paths, in order, against
// those seen before and writes one tab-separated line per duplicate:
// PMID, PMID of the earlier record, reason and score. It returns the number of
// duplicates found.
func (p *Processor) Duplicates(ctx context.Context, paths []string, w io.Writer) (found int, err error) {
	checker := dedup.NewChecker(p.dedup)
	logger := observability.LoggerFromContext(ctx)
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); ferr != nil {
			err = errors.Join(err, fmt.Errorf("dupes: %w", ferr))
		}
	}()

	checked := 0
	for _, path := range paths {
		doc, err := p.Decode(ctx, path)
		if err != nil {
			return found, err
		}
		papers, err := papersOf(doc, "dupes")
		if err != nil {
			return found, fmt.Errorf("dupes %s: %w", path, err)
		}
		for _, paper := range papers {
			checked++
			res := checker.Check(paper)
			if !res.IsDuplicate {
				continue
			}
			found++
			fmt.Fprintf(bw, "%s\t%s\t%s\t%.2f\n", paper.PMID, res.DuplicateOf, res.Reason, res.Score)
		}
	}

	logger.Info().Int("checked", checked).Int("duplicates", found).Msg("duplicate check finished")
	return found, nil
}
