package tools

// Typed shapes of the generator outputs. They mirror the schemas in the
// prompt catalog and are what API clients receive.

type IdeaAnalysis struct {
	ElevatorPitch  string `json:"elevatorPitch"`
	TargetAudience struct {
		Primary   string `json:"primary"`
		Secondary string `json:"secondary"`
		Tertiary  string `json:"tertiary"`
	} `json:"targetAudience"`
	ProblemStatement  string   `json:"problemStatement"`
	MarketOpportunity string   `json:"marketOpportunity"`
	RiskFactors       []string `json:"riskFactors"`
	SuccessFactors    []string `json:"successFactors"`
}

type Feature struct {
	Name         string `json:"name"`
	Priority     string `json:"priority"`
	Effort       string `json:"effort"`
	Description  string `json:"description"`
	TimeEstimate string `json:"timeEstimate"`
}

type MVPPlan struct {
	CoreFeatures        []Feature `json:"coreFeatures"`
	DevelopmentTimeline string    `json:"developmentTimeline"`
	EstimatedCost       string    `json:"estimatedCost"`
	TechStack           []string  `json:"techStack"`
	PostMVPFeatures     []string  `json:"postMvpFeatures"`
}

type Testimonial struct {
	Name    string  `json:"name"`
	Role    string  `json:"role"`
	Content string  `json:"content"`
	Rating  float64 `json:"rating"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type PricingPlan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

type LandingPage struct {
	HeroSection struct {
		Headline    string `json:"headline"`
		Subheadline string `json:"subheadline"`
		CTA         string `json:"cta"`
	} `json:"heroSection"`
	Features []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"features"`
	SocialProof struct {
		Testimonials []Testimonial `json:"testimonials"`
		Stats        []Stat        `json:"stats"`
	} `json:"socialProof"`
	Pricing struct {
		Plans []PricingPlan `json:"plans"`
	} `json:"pricing"`
	CTA struct {
		Headline    string `json:"headline"`
		Subheadline string `json:"subheadline"`
		Button      string `json:"button"`
	} `json:"cta"`
}

type ColdEmail struct {
	Subject  string   `json:"subject"`
	Email    string   `json:"email"`
	FollowUp string   `json:"followUp"`
	Tips     []string `json:"tips"`
}

type Competitor struct {
	Name            string   `json:"name"`
	URL             string   `json:"url"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Pricing         string   `json:"pricing"`
	Users           string   `json:"users"`
	Funding         string   `json:"funding"`
	Differentiators []string `json:"differentiators"`
}

type CompetitorReport struct {
	Competitors    []Competitor `json:"competitors"`
	MarketAnalysis struct {
		MarketSize    string   `json:"marketSize"`
		GrowthRate    string   `json:"growthRate"`
		KeyTrends     []string `json:"keyTrends"`
		Opportunities []string `json:"opportunities"`
	} `json:"marketAnalysis"`
	CompetitiveAdvantages []string `json:"competitiveAdvantages"`
	Threats               []string `json:"threats"`
	Recommendations       []string `json:"recommendations"`
}

type CanvasBlock struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

type LeanCanvas struct {
	Problem                CanvasBlock `json:"problem"`
	Solution               CanvasBlock `json:"solution"`
	KeyMetrics             CanvasBlock `json:"keyMetrics"`
	UniqueValueProposition struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"uniqueValueProposition"`
	UnfairAdvantage  CanvasBlock `json:"unfairAdvantage"`
	Channels         CanvasBlock `json:"channels"`
	CustomerSegments CanvasBlock `json:"customerSegments"`
	CostStructure    CanvasBlock `json:"costStructure"`
	RevenueStreams   CanvasBlock `json:"revenueStreams"`
}

type Slide struct {
	Title   string `json:"title"`
	Content struct {
		Headline         string   `json:"headline"`
		Bullets          []string `json:"bullets"`
		VisualSuggestion string   `json:"visualSuggestion"`
	} `json:"content"`
}

type PitchDeck struct {
	Slides []Slide `json:"slides"`
}

type FounderBios struct {
	Short      string `json:"short"`
	Medium     string `json:"medium"`
	Long       string `json:"long"`
	LinkedIn   string `json:"linkedIn"`
	Twitter    string `json:"twitter"`
	SpeakerBio string `json:"speakerBio"`
}

type OnePager struct {
	CompanyName   string   `json:"companyName"`
	Tagline       string   `json:"tagline"`
	Problem       string   `json:"problem"`
	Solution      string   `json:"solution"`
	KeyFeatures   []string `json:"keyFeatures"`
	Target        string   `json:"target"`
	BusinessModel string   `json:"businessModel"`
	Traction      []string `json:"traction"`
	Team          string   `json:"team"`
	Funding       struct {
		Seeking  string `json:"seeking"`
		Use      string `json:"use"`
		Timeline string `json:"timeline"`
	} `json:"funding"`
	Projections struct {
		Year1 string `json:"year1"`
		Year2 string `json:"year2"`
		Year3 string `json:"year3"`
	} `json:"projections"`
	Contact struct {
		Email   string `json:"email"`
		Website string `json:"website"`
		Phone   string `json:"phone"`
	} `json:"contact"`
}

// newResult returns a pointer to the typed result of id, or nil for tools
// that are only known to a custom prompt catalog.
func newResult(id ID) any {
	switch id {
	case IdeaAnalyzer:
		return &IdeaAnalysis{}
	case MVPGenerator:
		return &MVPPlan{}
	case LandingPageWriter:
		return &LandingPage{}
	case EmailGenerator:
		return &ColdEmail{}
	case CompetitorAnalysis:
		return &CompetitorReport{}
	case LeanCanvasBuilder:
		return &LeanCanvas{}
	case PitchDeckSlides:
		return &PitchDeck{}
	case FounderBio:
		return &FounderBios{}
	case OnePagerWriter:
		return &OnePager{}
	}
	return nil
}
