// Package assistant wraps the Gemini API behind the roster's batch-edit
// protocol. The model receives the month's schedule as context and must
// answer with a single JSON object, either a batch of cell updates or a
// plain-text answer.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"rosterboard/internal/roster"
)

// ResponseType discriminates the model's JSON reply.
type ResponseType string

const (
	TypeUpdate ResponseType = "UPDATE"
	TypeAnswer ResponseType = "ANSWER"
	TypeError  ResponseType = "ERROR"
)

// Response is the parsed model reply.
type Response struct {
	Type    ResponseType            `json:"type"`
	Message string                  `json:"message"`
	Updates []roster.ProposedUpdate `json:"updates,omitempty"`
}

// Context is the roster state handed to the model with every request.
type Context struct {
	Year       int
	Month      int
	Employees  []roster.Employee
	ShiftTypes []roster.ShiftType
	Schedule   roster.ScheduleData
}

// Client talks to the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// New creates an assistant client. The API key is required.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("assistant: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("assistant: create client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Ask sends the user prompt with full roster context and parses the
// JSON reply. Transport failures and malformed replies surface as
// errors; an in-band refusal comes back as a TypeError response.
func (c *Client) Ask(ctx context.Context, prompt string, rc Context) (Response, error) {
	instruction, err := buildSystemInstruction(rc)
	if err != nil {
		return Response{}, err
	}
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return Response{}, fmt.Errorf("assistant: generate content: %w", err)
	}
	return parseResponse(result.Text())
}

// buildSystemInstruction renders the roster context into the prompt the
// model is steered with. Message text must come back in Japanese; the
// structural envelope stays English so parsing is stable.
func buildSystemInstruction(rc Context) (string, error) {
	scheduleJSON, err := json.Marshal(rc.Schedule)
	if err != nil {
		return "", fmt.Errorf("assistant: encode schedule context: %w", err)
	}

	employees := make([]string, 0, len(rc.Employees))
	for _, emp := range rc.Employees {
		employees = append(employees, fmt.Sprintf("%s (ID: %s)", emp.Name, emp.ID))
	}
	shifts := make([]string, 0, len(rc.ShiftTypes))
	for _, st := range rc.ShiftTypes {
		shifts = append(shifts, fmt.Sprintf("%s (ID: %s)", st.Name, st.ID))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an intelligent roster assistant managing the shift schedule for %d-%02d.\n\n", rc.Year, rc.Month)
	b.WriteString("CRITICAL RULE: all text in the 'message' field MUST be in Japanese.\n\n")
	fmt.Fprintf(&b, "Employees: %s\n", strings.Join(employees, ", "))
	fmt.Fprintf(&b, "Valid shift types: %s\n", strings.Join(shifts, ", "))
	fmt.Fprintf(&b, "Current schedule data: %s\n\n", scheduleJSON)
	b.WriteString(`Analyze the user's request.

1. UPDATE requests (assigning or changing shifts):
   respond {"type":"UPDATE","message":"<Japanese summary>","updates":[{"date":"YYYY-MM-DD","employeeId":"emp1","shiftIds":["id"],"note":"optional"}]}

2. QUESTION requests (who works when, counting holidays):
   answer from the schedule data above and respond {"type":"ANSWER","message":"<Japanese answer>"}

Rules:
- Date format is YYYY-MM-DD.
`)
	fmt.Fprintf(&b, "- Only generate dates inside %d-%02d.\n", rc.Year, rc.Month)
	b.WriteString("- Use employee and shift IDs exactly as listed.\n- ALWAYS respond in Japanese.\n")
	return b.String(), nil
}

// parseResponse decodes the model's JSON reply. Some models wrap JSON
// in a markdown fence despite the response MIME type, so fences are
// stripped first.
func parseResponse(text string) (Response, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return Response{}, fmt.Errorf("assistant: empty reply")
	}
	var resp Response
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return Response{}, fmt.Errorf("assistant: parse reply: %w", err)
	}
	switch resp.Type {
	case TypeUpdate, TypeAnswer, TypeError:
	default:
		return Response{}, fmt.Errorf("assistant: unknown reply type %q", resp.Type)
	}
	if resp.Type == TypeUpdate && len(resp.Updates) == 0 {
		return Response{}, fmt.Errorf("assistant: UPDATE reply carries no updates")
	}
	return resp, nil
}
