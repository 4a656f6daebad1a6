package discography

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type listingResponse struct {
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
	Continue *struct {
		CMContinue string `json:"cmcontinue"`
	} `json:"continue"`
	Query struct {
		CategoryMembers []Member `json:"categorymembers"`
	} `json:"query"`
}

// Wiki lists category members through MediaWiki API.
type Wiki struct {
	// BaseURL is wiki root, e.g. https://vocaloidlyrics.fandom.com.
	BaseURL string
	Client  *http.Client
	Log     *zap.Logger
	// Limit bounds the number of concurrent subcategory requests.
	Limit int
}

// Members returns all members of the category following continuations.
func (w *Wiki) Members(ctx context.Context, category string) ([]Member, error) {
	httpClient := w.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}

	var (
		res  []Member
		cont string
	)
	for {
		params := url.Values{
			"action":  {"query"},
			"format":  {"json"},
			"list":    {"categorymembers"},
			"cmtitle": {category},
			"cmprop":  {"title|sortkeyprefix"},
			"cmlimit": {"500"},
			"cmtype":  {"page|subcat"},
			"cmsort":  {"sortkey"},
			"cmdir":   {"ascending"},
		}
		if cont != "" {
			params.Set("cmcontinue", cont)
		}
		reqURL := strings.TrimRight(w.BaseURL, "/") + "/api.php?" + params.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("unable to build request: %w", err)
		}
		log.Debug("Listing category", zap.String("category", category), zap.String("continue", cont))
		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		var lr listingResponse
		err = func() error {
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %d", resp.StatusCode)
			}
			return json.NewDecoder(resp.Body).Decode(&lr)
		}()
		if err != nil {
			return nil, fmt.Errorf("unable to list '%s': %w", category, err)
		}
		if lr.Error != nil {
			return nil, fmt.Errorf("failed fetch: %s", lr.Error.Info)
		}
		res = append(res, lr.Query.CategoryMembers...)
		if lr.Continue == nil || lr.Continue.CMContinue == "" {
			return res, nil
		}
		cont = lr.Continue.CMContinue
	}
}

// Fetch lists producer category and its subcategories and merges them.
func (w *Wiki) Fetch(ctx context.Context, prodcat string) (*Discography, error) {
	if strings.TrimSpace(prodcat) == "" {
		return nil, errors.New("producer category cannot be empty")
	}
	main, err := w.Members(ctx, SongsCategory(prodcat))
	if err != nil {
		return nil, err
	}

	var (
		mu   sync.Mutex
		subs = make(map[string][]Member)
	)
	g, gctx := errgroup.WithContext(ctx)
	if w.Limit > 0 {
		g.SetLimit(w.Limit)
	}
	for _, sub := range Subcategories(main) {
		g.Go(func() error {
			members, err := w.Members(gctx, sub)
			if err != nil {
				return err
			}
			mu.Lock()
			subs[sub] = members
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Merge(main, subs)
}
