// Package secrets collects the two credentials the deployment needs (the
// ngrok auth token and the OpenAI API key) and reads them back from the
// generated .env file. Values are never validated for format.
package secrets
