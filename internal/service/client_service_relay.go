package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/trademark-relay/internal/adapter"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/utils"
	"github.com/MKhiriev/trademark-relay/models"
	"github.com/tidwall/gjson"
)

// clientCaller is the "sub" claim of tokens issued by the terminal client.
const clientCaller = "tui"

const clientTokenTTL = 5 * time.Minute

// Paths tried in order when decoding research responses. The research API
// has changed its envelope before, so several shapes are accepted.
var (
	itemsPaths         = []string{"payload.item", "payload.items", "items", "data", "results"}
	totalPaths         = []string{"payload.total", "payload.totalCount", "total", "totalCount"}
	applicationNoPaths = []string{"applicationNo", "applicationNumber", "fileNo", "id"}
	markNamePaths      = []string{"markName", "trademarkName", "name"}
	holderPaths        = []string{"holdName", "holderName", "holder"}
	niceClassesPaths   = []string{"niceClasses", "classes"}
	statusPaths        = []string{"state", "status"}
)

// ClientAuth configures bearer tokens presented to the relay.
type ClientAuth struct {
	SignKey string
	Issuer  string
}

type clientRelayService struct {
	adapter adapter.RelayAdapter
	auth    ClientAuth

	logger *logger.Logger
}

func NewClientRelayService(relayAdapter adapter.RelayAdapter, auth ClientAuth, logger *logger.Logger) ClientRelayService {
	return &clientRelayService{adapter: relayAdapter, auth: auth, logger: logger}
}

func (c *clientRelayService) Search(ctx context.Context, q models.SearchQuery) (models.ResearchResult, error) {
	if err := c.refreshToken(); err != nil {
		return models.ResearchResult{}, err
	}

	body, err := c.adapter.Search(ctx, q.ToRequest())
	if err != nil {
		c.logger.Err(err).Msg("search failed")
		return models.ResearchResult{}, mapAdapterError(err)
	}

	return parseResearchResult(body)
}

func (c *clientRelayService) FileDetails(ctx context.Context, applicationNo string) (string, error) {
	applicationNo = strings.TrimSpace(applicationNo)
	if err := c.refreshToken(); err != nil {
		return "", err
	}

	id, err := json.Marshal(applicationNo)
	if err != nil {
		return "", err
	}

	body, err := c.adapter.FileDetails(ctx, models.FileDetailRequest{ID: id})
	if err != nil {
		c.logger.Err(err).Str("application_no", applicationNo).Msg("file details failed")
		return "", mapAdapterError(err)
	}

	var pretty bytes.Buffer
	if err = json.Indent(&pretty, body, "", "  "); err != nil {
		return string(body), nil
	}
	return pretty.String(), nil
}

func (c *clientRelayService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}

// refreshToken issues a short-lived token for the next call. Without a sign
// key the relay is expected to run with auth disabled.
func (c *clientRelayService) refreshToken() error {
	if c.auth.SignKey == "" {
		return nil
	}

	token, err := utils.GenerateJWTToken(c.auth.Issuer, clientCaller, clientTokenTTL, c.auth.SignKey)
	if err != nil {
		return fmt.Errorf("error issuing relay token: %w", err)
	}
	c.adapter.SetToken(token.String())
	return nil
}

func parseResearchResult(body []byte) (models.ResearchResult, error) {
	if !gjson.ValidBytes(body) {
		return models.ResearchResult{}, fmt.Errorf("%w: response is not JSON", ErrNoResults)
	}

	root := gjson.ParseBytes(body)
	items := root
	if !root.IsArray() {
		items = firstOf(root, itemsPaths...)
	}
	if !items.IsArray() {
		return models.ResearchResult{}, ErrNoResults
	}

	var result models.ResearchResult
	items.ForEach(func(_, item gjson.Result) bool {
		result.Items = append(result.Items, models.ResearchItem{
			ApplicationNo: firstOf(item, applicationNoPaths...).String(),
			MarkName:      firstOf(item, markNamePaths...).String(),
			Holder:        firstOf(item, holderPaths...).String(),
			NiceClasses:   firstOf(item, niceClassesPaths...).String(),
			Status:        firstOf(item, statusPaths...).String(),
			Raw:           item.Raw,
		})
		return true
	})

	result.Total = len(result.Items)
	if total := firstOf(root, totalPaths...); total.Type == gjson.Number {
		result.Total = int(total.Int())
	}
	return result, nil
}

func firstOf(v gjson.Result, paths ...string) gjson.Result {
	for _, path := range paths {
		if r := v.Get(path); r.Exists() && r.Type != gjson.Null {
			return r
		}
	}
	return gjson.Result{}
}
