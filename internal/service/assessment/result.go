package assessment

// ChartEntry is one chart-ready (label, score) pair
type ChartEntry struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// DimensionDescription is narrative detail for a top interest dimension
type DimensionDescription struct {
	DimensionName string `json:"dimension_name"`
	Description   string `json:"description"`
}

// InterestResult is the outcome of an interest inventory
type InterestResult struct {
	UserID                string                 `json:"user_id"`
	TestUUID              string                 `json:"test_uuid"`
	HollandCode           string                 `json:"holland_code"`
	TypeName              string                 `json:"type_name"`
	Description           string                 `json:"description"`
	KeyTraits             []string               `json:"key_traits"`
	CareerPath            []string               `json:"career_path"`
	ChartData             []ChartEntry           `json:"chart_data"`
	DimensionDescriptions []DimensionDescription `json:"dimension_descriptions"`
}

// PersonalityTypeDetails describes the predicted personality type
type PersonalityTypeDetails struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DimensionScore is a scored personality dimension. Percentage is formatted "12.34%".
type DimensionScore struct {
	DimensionName string  `json:"dimension_name"`
	Score         float64 `json:"score"`
	Percentage    string  `json:"percentage"`
}

// PersonalityTraits splits a type's traits by polarity
type PersonalityTraits struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// PersonalityResult is the outcome of a personality inventory
type PersonalityResult struct {
	UserUUID              string                 `json:"user_uuid"`
	TestUUID              string                 `json:"test_uuid"`
	PersonalityType       PersonalityTypeDetails `json:"personality_type"`
	Dimensions            []DimensionScore       `json:"dimensions"`
	Traits                PersonalityTraits      `json:"traits"`
	Strengths             []string               `json:"strengths"`
	Weaknesses            []string               `json:"weaknesses"`
	CareerRecommendations []string               `json:"career_recommendations"`
}

// ValueCategoryDetails is narrative detail for a featured work value
type ValueCategoryDetails struct {
	Name            string `json:"name"`
	Definition      string `json:"definition"`
	Characteristics string `json:"characteristics"`
	Percentage      string `json:"percentage"`
}

// ValueResult is the outcome of a work values inventory
type ValueResult struct {
	UserID                string                 `json:"user_id"`
	TestUUID              string                 `json:"test_uuid"`
	ChartData             []ChartEntry           `json:"chart_data"`
	ValueDetails          []ValueCategoryDetails `json:"value_details"`
	CareerRecommendations []string               `json:"career_recommendations"`
}

// strs turns nil into an empty slice so snapshots serialize [] rather than null
func strs(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
