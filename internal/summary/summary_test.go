package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixir/medline/internal/medline"
)

const articleSetXML = `<?xml version="1.0" encoding="UTF-8" ?>
<PubmedArticleSet>
	<PubmedArticle>
		<MedlineCitation Status="MEDLINE" Owner="NLM">
			<PMID Version="1">12345678</PMID>
			<DateCreated><Year>2023</Year><Month>03</Month><Day>01</Day></DateCreated>
			<Article PubModel="Print-Electronic">
				<Journal>
					<ISSN IssnType="Electronic">1234-5678</ISSN>
					<JournalIssue CitedMedium="Internet">
						<Volume>25</Volume>
						<Issue>3</Issue>
						<PubDate>
							<Year>2023</Year>
							<Month>Mar</Month>
							<Day>15</Day>
						</PubDate>
					</JournalIssue>
					<Title>Journal of Testing</Title>
					<ISOAbbreviation>J Test</ISOAbbreviation>
				</Journal>
				<ArticleTitle>CRISPR-Cas9 Gene Editing in Biomedical Research</ArticleTitle>
				<Pagination>
					<MedlinePgn>123-145</MedlinePgn>
				</Pagination>
				<ELocationID EIdType="doi" ValidYN="Y">10.1234/test.2023.001</ELocationID>
				<Abstract>
					<AbstractText Label="BACKGROUND" NlmCategory="BACKGROUND">Gene editing technologies have revolutionized biomedical research.</AbstractText>
					<AbstractText Label="METHODS" NlmCategory="METHODS">We analyzed CRISPR-Cas9 applications across multiple studies.</AbstractText>
				</Abstract>
				<AuthorList CompleteYN="Y">
					<Author ValidYN="Y">
						<LastName>Smith</LastName>
						<ForeName>John A</ForeName>
						<Initials>JA</Initials>
						<Identifier Source="ORCID">0000-0001-2345-6789</Identifier>
						<AffiliationInfo>
							<Affiliation>Department of Genetics, University of Research</Affiliation>
						</AffiliationInfo>
					</Author>
					<Author ValidYN="N">
						<LastName>Misattributed</LastName>
					</Author>
					<Author>
						<CollectiveName>CRISPR Research Consortium</CollectiveName>
					</Author>
				</AuthorList>
				<Language>eng</Language>
				<PublicationTypeList>
					<PublicationType UI="D016428">Journal Article</PublicationType>
				</PublicationTypeList>
				<ArticleDate DateType="Electronic">
					<Year>2023</Year>
					<Month>02</Month>
					<Day>28</Day>
				</ArticleDate>
			</Article>
			<MedlineJournalInfo><MedlineTA>J Test</MedlineTA></MedlineJournalInfo>
			<MeshHeadingList>
				<MeshHeading>
					<DescriptorName UI="D000090386" MajorTopicYN="Y">CRISPR-Cas Systems</DescriptorName>
				</MeshHeading>
				<MeshHeading>
					<DescriptorName UI="D000077269" MajorTopicYN="N">Gene Editing</DescriptorName>
				</MeshHeading>
			</MeshHeadingList>
			<KeywordList Owner="NOTNLM">
				<Keyword MajorTopicYN="N">CRISPR</Keyword>
				<Keyword MajorTopicYN="N">Gene editing</Keyword>
				<Keyword MajorTopicYN="N">crispr</Keyword>
			</KeywordList>
		</MedlineCitation>
		<PubmedData>
			<PublicationStatus>ppublish</PublicationStatus>
			<ArticleIdList>
				<ArticleId IdType="pubmed">12345678</ArticleId>
				<ArticleId IdType="doi">10.1234/test.2023.001</ArticleId>
				<ArticleId IdType="pmc">PMC9876543</ArticleId>
			</ArticleIdList>
		</PubmedData>
	</PubmedArticle>
	<PubmedArticle>
		<MedlineCitation Status="MEDLINE" Owner="NLM">
			<PMID Version="1">87654321</PMID>
			<DateCreated><Year>2022</Year><Month>01</Month><Day>01</Day></DateCreated>
			<Article PubModel="Print">
				<Journal>
					<JournalIssue CitedMedium="Print">
						<Volume>10</Volume>
						<PubDate>
							<MedlineDate>2022 Nov-Dec</MedlineDate>
						</PubDate>
					</JournalIssue>
					<ISOAbbreviation>Nat Example</ISOAbbreviation>
				</Journal>
				<ArticleTitle>Protein Folding Prediction Using <i>Deep</i> Learning</ArticleTitle>
				<Pagination>
					<StartPage>50</StartPage>
					<EndPage>62</EndPage>
				</Pagination>
				<Abstract>
					<AbstractText>Deep learning models have achieved remarkable accuracy in protein structure prediction (R<sup>2</sup> &gt; 0.9).</AbstractText>
				</Abstract>
				<Language>eng</Language>
			</Article>
			<MedlineJournalInfo><MedlineTA>Nat Example</MedlineTA></MedlineJournalInfo>
		</MedlineCitation>
		<PubmedData>
			<PublicationStatus>ppublish</PublicationStatus>
			<ArticleIdList>
				<ArticleId IdType="pubmed">87654321</ArticleId>
			</ArticleIdList>
		</PubmedData>
	</PubmedArticle>
</PubmedArticleSet>`

func decodeSet(t *testing.T) medline.PubmedArticleSet {
	t.Helper()
	var set medline.PubmedArticleSet
	require.NoError(t, medline.Unmarshal([]byte(articleSetXML), &set))
	require.Equal(t, 2, set.PubmedArticles.Len())
	return set
}

func TestFromArticle(t *testing.T) {
	set := decodeSet(t)

	paper := FromArticle(set.PubmedArticles[0])

	assert.Equal(t, "doi:10.1234/test.2023.001", paper.CanonicalID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", paper.ID.String())
	assert.Equal(t, "12345678", paper.PMID)
	assert.Equal(t, "10.1234/test.2023.001", paper.DOI)
	assert.Equal(t, "PMC9876543", paper.PMCID)
	assert.True(t, paper.OpenAccess)
	assert.Equal(t, "CRISPR-Cas9 Gene Editing in Biomedical Research", paper.Title)
	assert.Equal(t, "Journal of Testing", paper.Journal)
	assert.Equal(t, "J Test", paper.JournalAbbrev)
	assert.Equal(t, "25", paper.Volume)
	assert.Equal(t, "3", paper.Issue)
	assert.Equal(t, "123-145", paper.Pages)
	assert.Equal(t, "ppublish", paper.PubStatus)
	assert.Equal(t, "MEDLINE", paper.CitationStatus)
	assert.Equal(t, []string{"eng"}, paper.Languages)
	assert.Equal(t, []string{"Journal Article"}, paper.PublicationTypes)
	assert.Equal(t, []string{"CRISPR-Cas Systems", "Gene Editing"}, paper.MeshTerms)
	assert.Equal(t, []string{"CRISPR-Cas Systems"}, paper.MajorTopics)
	assert.Equal(t, []string{"CRISPR", "Gene editing"}, paper.Keywords)
	assert.False(t, paper.Retracted)

	// ArticleDate wins over PubDate
	require.NotNil(t, paper.PublicationDate)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), *paper.PublicationDate)
	assert.Equal(t, 2023, paper.PublicationYear)

	assert.Equal(t,
		"BACKGROUND: Gene editing technologies have revolutionized biomedical research. "+
			"METHODS: We analyzed CRISPR-Cas9 applications across multiple studies.",
		paper.Abstract)

	require.Len(t, paper.Authors, 2, "ValidYN=N authors are skipped")
	assert.Equal(t, "John A Smith", paper.Authors[0].Name)
	assert.Equal(t, "0000-0001-2345-6789", paper.Authors[0].ORCID)
	assert.Equal(t, "Department of Genetics, University of Research", paper.Authors[0].Affiliation)
	assert.Equal(t, "CRISPR Research Consortium", paper.Authors[1].Name)
}

func TestFromArticle_MedlineDateAndPages(t *testing.T) {
	set := decodeSet(t)

	paper := FromArticle(set.PubmedArticles[1])

	assert.Equal(t, "pubmed:87654321", paper.CanonicalID)
	assert.Empty(t, paper.DOI)
	assert.False(t, paper.OpenAccess)
	assert.Equal(t, "Nat Example", paper.Journal)
	assert.Equal(t, "50-62", paper.Pages)
	assert.Equal(t, "Protein Folding Prediction Using Deep Learning", paper.Title)
	assert.Equal(t, "Deep learning models have achieved remarkable accuracy in protein structure prediction (R2 > 0.9).", paper.Abstract)
	assert.Nil(t, paper.Authors)
	assert.Nil(t, paper.Keywords)

	require.NotNil(t, paper.PublicationDate)
	assert.Equal(t, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), *paper.PublicationDate)
	assert.Equal(t, 2022, paper.PublicationYear)
}

func TestFromCitation_NoPubmedData(t *testing.T) {
	set := decodeSet(t)

	paper := FromCitation(set.PubmedArticles[0].MedlineCitation)

	assert.Equal(t, "doi:10.1234/test.2023.001", paper.CanonicalID)
	assert.Empty(t, paper.PMCID)
	assert.Empty(t, paper.PubStatus)
}

func TestExtractPublicationDate_PubDateYMD(t *testing.T) {
	year, month, day := "2021", "Sep", "7"
	article := medline.Article{}
	article.Journal.JournalIssue.PubDate = medline.PubDate{Year: &year, Month: &month, Day: &day}

	got, y := extractPublicationDate(article)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2021, time.September, 7, 0, 0, 0, 0, time.UTC), *got)
	assert.Equal(t, 2021, y)

	got, y = extractPublicationDate(medline.Article{})
	assert.Nil(t, got)
	assert.Zero(t, y)
}

func TestExtractPages(t *testing.T) {
	s := func(v string) *string { return &v }

	tests := []struct {
		name       string
		pagination *medline.Pagination
		expected   string
	}{
		{name: "nil", pagination: nil, expected: ""},
		{name: "medline pgn", pagination: &medline.Pagination{MedlinePgn: s("e12")}, expected: "e12"},
		{name: "start and end", pagination: &medline.Pagination{StartPage: s("1"), EndPage: s("9")}, expected: "1-9"},
		{name: "same start and end", pagination: &medline.Pagination{StartPage: s("4"), EndPage: s("4")}, expected: "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractPages(tt.pagination))
		})
	}
}
