package entity

import "time"

// SearchKind selects a search endpoint variant.
type SearchKind string

const (
	SearchOrganic SearchKind = "search"
	SearchNews    SearchKind = "news"
	SearchImages  SearchKind = "images"
)

// SearchRequest is the outbound search payload.
type SearchRequest struct {
	Query    string `json:"q"`
	Location string `json:"gl,omitempty"`
	Language string `json:"hl,omitempty"`
	Num      int    `json:"num"`
}

type OrganicResult struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Date     string `json:"date,omitempty"`
	Position int    `json:"position,omitempty"`
}

type NewsResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Date    string `json:"date,omitempty"`
	Source  string `json:"source,omitempty"`
}

type ImageResult struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
	Source   string `json:"source,omitempty"`
}

// SearchResponse holds whichever result lists the endpoint returned.
type SearchResponse struct {
	Organic []OrganicResult `json:"organic,omitempty"`
	News    []NewsResult    `json:"news,omitempty"`
	Images  []ImageResult   `json:"images,omitempty"`
}

type MarketResearchRequest struct {
	MarketQuery   string `json:"market_query"`
	Location      string `json:"location,omitempty"`
	IncludeNews   *bool  `json:"include_news,omitempty"`
	IncludeImages bool   `json:"include_images,omitempty"`
}

type CompetitorAnalysisRequest struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Location    string `json:"location,omitempty"`
}

type TrendAnalysisRequest struct {
	Industry   string `json:"industry"`
	TimePeriod string `json:"time_period,omitempty"`
	Location   string `json:"location,omitempty"`
}

// MarketAnalysis is the summarized view of collected search data.
type MarketAnalysis struct {
	MarketOverview  string   `json:"market_overview"`
	KeyInsights     []string `json:"key_insights"`
	MarketSize      string   `json:"market_size"`
	Competitors     []string `json:"competitors"`
	Trends          []string `json:"trends"`
	Opportunities   []string `json:"opportunities"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`
	RawAnalysis     string   `json:"raw_analysis,omitempty"`
}

// ResearchRawData keeps the per-branch search payloads.
type ResearchRawData struct {
	SearchResults []*SearchResponse `json:"search_results"`
	NewsResults   []*SearchResponse `json:"news_results"`
	ImageResults  []*SearchResponse `json:"image_results"`
}

type ResearchMetadata struct {
	SearchResultsCount int      `json:"search_results_count"`
	NewsResultsCount   int      `json:"news_results_count"`
	ImageResultsCount  int      `json:"image_results_count"`
	FailedBranches     []string `json:"failed_branches"`
	Degraded           bool     `json:"degraded"`
}

type MarketResearchResult struct {
	ID        string           `json:"id"`
	Query     string           `json:"query"`
	Location  string           `json:"location"`
	Timestamp time.Time        `json:"timestamp"`
	RawData   ResearchRawData  `json:"raw_data"`
	Analysis  MarketAnalysis   `json:"analysis"`
	Metadata  ResearchMetadata `json:"metadata"`
}

// MarketResearchResponse is the HTTP envelope of every research endpoint.
type MarketResearchResponse struct {
	Success  bool                  `json:"success"`
	Data     *MarketResearchResult `json:"data,omitempty"`
	Error    string                `json:"error,omitempty"`
	Query    string                `json:"query"`
	Location string                `json:"location"`
}
