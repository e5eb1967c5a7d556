package medline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_DataBankListCompleteYN(t *testing.T) {
	set := decodeArticleSet(t)
	dbl := set.PubmedArticles[0].MedlineCitation.Article.DataBankList
	require.NotNil(t, dbl)

	assert.Empty(t, dbl.CompleteYN, "absent attribute stays absent")
	assert.Equal(t, Yes, dbl.EffectiveCompleteYN())
	assert.True(t, dbl.IsComplete())
	assert.Equal(t, List[string]{"AB123456", "AB654321"}, dbl.DataBanks[0].AccessionNumberList.AccessionNumbers)
}

func TestDefaults(t *testing.T) {
	set := decodeArticleSet(t)
	first := set.PubmedArticles[0].MedlineCitation
	second := set.PubmedArticles[1]

	assert.Equal(t, CitationOwnerNLM, second.MedlineCitation.EffectiveOwner())
	assert.False(t, first.Article.GrantList.IsComplete())
	assert.Equal(t, Yes, first.Article.AuthorList.Authors[1].EffectiveValidYN())
	assert.Equal(t, No, first.MeshHeadingList.MeshHeadings[1].DescriptorName.EffectiveMajorTopicYN())
	assert.Equal(t, KeywordOwner("NOTNLM"), first.KeywordLists[0].EffectiveOwner())
	assert.Equal(t, No, first.KeywordLists[0].Keywords[1].EffectiveMajorTopicYN())
	assert.Equal(t, ArticleIdTypePubMed, second.PubmedData.ArticleIdList.ArticleIds[0].EffectiveIdType())
	assert.Equal(t, Yes, second.MedlineCitation.Article.ELocationIDs[0].EffectiveValidYN())

	assert.Equal(t, "Electronic", ArticleDate{}.EffectiveDateType())
	assert.Equal(t, KeywordOwnerNLM, KeywordList{}.EffectiveOwner())
	assert.Equal(t, GeneralNoteOwnerNLM, GeneralNote{}.EffectiveOwner())
	assert.Equal(t, Yes, Investigator{}.EffectiveValidYN())
	assert.True(t, AuthorList{}.IsComplete())
	assert.False(t, QualifierName{}.IsMajorTopic())
}

func TestPubmedArticle_Identifiers(t *testing.T) {
	set := decodeArticleSet(t)
	first := set.PubmedArticles[0]
	second := set.PubmedArticles[1]

	assert.Equal(t, "12345678", first.PMID())
	assert.Equal(t, "10.1234/test.2023.001", first.DOI())
	assert.Equal(t, "PMC9876543", first.PMCID())
	assert.Equal(t, "87654321", second.ArticleID(ArticleIdTypePubMed))
	assert.Empty(t, second.DOI())
	assert.Empty(t, second.PMCID())
	assert.Empty(t, PubmedArticle{}.ArticleID(ArticleIdTypeDOI))
}

func TestPubmedArticle_DOIFallsBackToArticleIdList(t *testing.T) {
	a := PubmedArticle{
		MedlineCitation: MedlineCitation{Article: Article{ELocationIDs: List[ELocationID]{
			{EIdType: EIdTypeDOI, ValidYN: No, Value: "10.0/invalid"},
		}}},
		PubmedData: &PubmedData{ArticleIdList: ArticleIdList{ArticleIds: List[ArticleId]{
			{IdType: ArticleIdTypeDOI, Value: " 10.0/valid "},
		}}},
	}
	assert.Equal(t, "10.0/valid", a.DOI())
}

func TestMedlineCitation_MajorTopics(t *testing.T) {
	set := decodeArticleSet(t)
	assert.Equal(t, []string{"CRISPR-Cas Systems", "Gene Editing"}, set.PubmedArticles[0].MedlineCitation.MajorTopics())
	assert.Nil(t, set.PubmedArticles[1].MedlineCitation.MajorTopics())
}

func TestMedlineCitation_PublicationFlags(t *testing.T) {
	set := decodeArticleSet(t)
	first := set.PubmedArticles[0].MedlineCitation
	second := set.PubmedArticles[1].MedlineCitation

	assert.True(t, first.IsReview())
	assert.True(t, first.HasPublicationType("journal article"))
	assert.False(t, first.IsRetracted())
	assert.False(t, first.IsRetraction())
	assert.Empty(t, first.RetractedInPMID())

	assert.False(t, second.IsReview())
	assert.True(t, second.IsRetracted())
	assert.Equal(t, "99999999", second.RetractedInPMID())
}

func TestAuthor_DisplayName(t *testing.T) {
	set := decodeArticleSet(t)
	authors := set.PubmedArticles[0].MedlineCitation.Article.AuthorList.Authors

	assert.Equal(t, "John A Smith", authors[0].DisplayName())
	assert.Equal(t, "CRISPR Research Consortium", authors[2].DisplayName())
	assert.Equal(t, "Curie", Author{LastName: ptr("Curie")}.DisplayName())
}

func TestPubDate_Kind(t *testing.T) {
	tests := []struct {
		name     string
		date     PubDate
		want     PubDateKind
		wantYear int
		wantOK   bool
	}{
		{name: "empty", date: PubDate{}, want: PubDateEmpty},
		{name: "ymd", date: PubDate{Year: ptr("2023"), Month: ptr("Mar")}, want: PubDateYMD, wantYear: 2023, wantOK: true},
		{name: "season", date: PubDate{Year: ptr("2021"), Season: ptr("Summer")}, want: PubDateSeason, wantYear: 2021, wantOK: true},
		{name: "medline", date: PubDate{MedlineDate: ptr("1998 Dec-1999 Jan")}, want: PubDateMedline, wantYear: 1998, wantOK: true},
		{name: "medline range", date: PubDate{MedlineDate: ptr("2020-2021")}, want: PubDateMedline, wantYear: 2020, wantOK: true},
		{name: "medline unparseable", date: PubDate{MedlineDate: ptr("Spring")}, want: PubDateMedline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.Kind())
			year, ok := tt.date.PublicationYear()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantYear, year)
		})
	}

	assert.Equal(t, "medline", PubDateMedline.String())
}

func TestDate_Time(t *testing.T) {
	got, err := Date{Year: "2023", Month: "Apr", Day: "12"}.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.April, 12, 0, 0, 0, 0, time.UTC), got)

	_, err = Date{Year: "2023", Month: "Smarch", Day: "1"}.Time()
	assert.Error(t, err)

	_, err = Date{Year: "MMXXIII", Month: "1", Day: "1"}.Time()
	assert.Error(t, err)
}

func TestPubMedPubDate_Time(t *testing.T) {
	set := decodeArticleSet(t)
	dates := set.PubmedArticles[0].PubmedData.History.PubMedPubDates

	received, err := dates[0].Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, time.November, 2, 0, 0, 0, 0, time.UTC), received)

	entrez, err := dates[1].Time()
	require.NoError(t, err)
	assert.Equal(t, PubStatusEntrez, dates[1].PubStatus)
	assert.Equal(t, time.Date(2023, time.March, 1, 6, 30, 0, 0, time.UTC), entrez)
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want time.Month
		ok   bool
	}{
		{in: "1", want: time.January, ok: true},
		{in: "09", want: time.September, ok: true},
		{in: "Sep", want: time.September, ok: true},
		{in: "december", want: time.December, ok: true},
		{in: " MAY ", want: time.May, ok: true},
		{in: "13", ok: false},
		{in: "", ok: false},
		{in: "Sept", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMonth(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
