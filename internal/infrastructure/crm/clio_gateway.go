package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"dischley_intake/internal/domain/entities"
	"dischley_intake/internal/usecase/interfaces"
)

const (
	defaultInboxURL = "https://grow.clio.com/inbox_leads"

	// fromSource labels submissions in the Clio inbox.
	fromSource = "Dischley Intake Form"

	maxRejectionBody = 4 << 10
)

var ErrMissingClioToken = errors.New("missing CLIO_TOKEN")

type inboxLead struct {
	FromFirst    string `json:"from_first"`
	FromLast     string `json:"from_last"`
	FromEmail    string `json:"from_email"`
	FromPhone    string `json:"from_phone"`
	FromMessage  string `json:"from_message"`
	ReferringURL string `json:"referring_url"`
	FromSource   string `json:"from_source"`
}

type inboxLeadPayload struct {
	InboxLead      inboxLead `json:"inbox_lead"`
	InboxLeadToken string    `json:"inbox_lead_token"`
}

// ClioGateway forwards new leads to the Clio Grow inbox. Sync is strictly
// best-effort: only HTTP 201 counts as accepted, everything else comes
// back as a rejected submission for the caller to log. With CRM_MOCK set
// it accepts everything locally without a network call.
type ClioGateway struct {
	httpClient   *http.Client
	inboxURL     string
	token        string
	referringURL string
	mockMode     bool
}

var _ interfaces.ICRMGateway = (*ClioGateway)(nil)

func NewClioGateway(token, referringURL string) (*ClioGateway, error) {
	if isCRMMockEnabled() {
		log.Printf("[crm][gateway] mock mode enabled")
		return &ClioGateway{mockMode: true}, nil
	}

	if token == "" {
		log.Printf("[crm][gateway] missing CLIO_TOKEN")
		return nil, ErrMissingClioToken
	}

	return &ClioGateway{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		inboxURL:     getenvDefault("CLIO_INBOX_URL", defaultInboxURL),
		token:        token,
		referringURL: referringURL,
	}, nil
}

func (g *ClioGateway) SubmitLead(ctx context.Context, l entities.Lead) (interfaces.CRMSubmission, error) {
	first, last := splitName(l.Name)
	payload := inboxLeadPayload{
		InboxLead: inboxLead{
			FromFirst:    first,
			FromLast:     last,
			FromEmail:    l.Email,
			FromPhone:    l.Phone,
			FromMessage:  fmt.Sprintf("Charge: %s, Notes: %s, Homework: %s", l.Charge, l.Notes, l.Homework),
			ReferringURL: g.referringURL,
			FromSource:   fromSource,
		},
		InboxLeadToken: g.token,
	}

	if g.mockMode {
		log.Printf("[crm][gateway] mock submit lead_id=%s from_first=%s from_last=%s", l.ID, first, last)
		return interfaces.CRMSubmission{Accepted: true, Status: http.StatusCreated}, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return interfaces.CRMSubmission{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.inboxURL, bytes.NewReader(body))
	if err != nil {
		return interfaces.CRMSubmission{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[crm][gateway] submit transport failed lead_id=%s err=%v", l.ID, err)
		return interfaces.CRMSubmission{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxRejectionBody))
		log.Printf("[crm][gateway] submit rejected lead_id=%s status=%d body=%s", l.ID, resp.StatusCode, respBody)
		return interfaces.CRMSubmission{Status: resp.StatusCode, Body: string(respBody)}, nil
	}

	log.Printf("[crm][gateway] submit accepted lead_id=%s", l.ID)
	return interfaces.CRMSubmission{Accepted: true, Status: resp.StatusCode}, nil
}

// splitName derives Clio's first/last fields from the free-text name. A
// single-token name yields identical first and last; middle tokens are
// dropped. Clio-side matching depends on this exact derivation.
func splitName(name string) (first, last string) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", ""
	}
	return tokens[0], tokens[len(tokens)-1]
}

func isCRMMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CRM_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
