package assessment

// family names the catalog rows and session label used by one assessment kind
type family struct {
	key            string // metrics label and log field
	testName       string // UserTest.Name
	assessmentType string // AssessmentType.Name
}

var (
	interestFamily    = family{key: "interest", testName: "Interest", assessmentType: "Interests"}
	personalityFamily = family{key: "personality", testName: "Personality", assessmentType: "Personality"}
	valueFamily       = family{key: "value", testName: "Value Assessment", assessmentType: "Values"}
)
