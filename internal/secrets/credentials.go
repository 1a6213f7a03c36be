package secrets

// Environment variable names written into the generated .env file and read
// by the containers at startup.
const (
	EnvNgrokAuth    = "NGROK_AUTH"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// Prompt labels, shown in this order.
const (
	LabelNgrokAuth    = "Enter your ngrok authtoken: "
	LabelOpenAIAPIKey = "Enter your OpenAI API key: "
)

// Credentials is the pair of secrets collected for one scaffold run.
type Credentials struct {
	NgrokAuth    string
	OpenAIAPIKey string
}

