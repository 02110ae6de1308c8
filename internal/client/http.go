package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"sheetfmt/internal/domain"
)

// maxErrorBody caps how much of an error response is quoted back.
const maxErrorBody = 4 << 10

type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base. hc may be nil.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

func (c *HTTP) Infos(ctx context.Context) ([]domain.Info, error) {
	var out []domain.Info
	if err := c.get(ctx, "/api/formatter", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) Info(ctx context.Context, name domain.FormatterName) (domain.Info, error) {
	var out domain.Info
	if err := c.get(ctx, "/api/formatter/"+url.PathEscape(name.String()), nil, &out); err != nil {
		return domain.Info{}, err
	}
	return out, nil
}

func (c *HTTP) Edit(ctx context.Context, selector string) (domain.Edit, error) {
	var out domain.Edit
	if err := c.post(ctx, "/api/formatter/*/edit", selector, &out); err != nil {
		return domain.Edit{}, err
	}
	return out, nil
}

func (c *HTTP) Format(
	ctx context.Context,
	requests []domain.FormatRequest,
) ([]domain.FormattedValue, error) {
	if requests == nil {
		requests = []domain.FormatRequest{}
	}
	var out []domain.FormattedValue
	if err := c.post(ctx, "/api/formatter/*/format", requests, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) Menu(ctx context.Context) (domain.MenuList, error) {
	var out domain.MenuList
	if err := c.get(ctx, "/api/formatter/*/menu", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) Samples(ctx context.Context, name domain.FormatterName) ([]domain.Sample, error) {
	var out []domain.Sample
	if err := c.get(ctx, "/api/formatter/"+url.PathEscape(name.String())+"/samples", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) TextComponents(
	ctx context.Context,
	selector domain.Selector,
) ([]domain.TextComponent, error) {
	var out []domain.TextComponent
	if err := c.get(ctx, selectorPath(selector, "text-components"), textQuery(selector), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NextTextComponent returns nil when the server answers null.
func (c *HTTP) NextTextComponent(
	ctx context.Context,
	selector domain.Selector,
) (*domain.TextComponent, error) {
	var out *domain.TextComponent
	if err := c.get(ctx, selectorPath(selector, "next-text-component"), textQuery(selector), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func selectorPath(selector domain.Selector, view string) string {
	return "/api/formatter/" + url.PathEscape(selector.Name.String()) + "/" + view
}

func textQuery(selector domain.Selector) url.Values {
	return url.Values{"text": []string{selector.Text}}
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTP) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.Base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTP) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.Errorf("client."+strings.ToLower(req.Method), kindFor(resp.StatusCode),
			"%s %s: %s: %s", req.Method, req.URL, resp.Status, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL, err)
	}
	return nil
}

func kindFor(status int) domain.ErrorKind {
	switch status {
	case http.StatusNotFound:
		return domain.KindNotFound
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return domain.KindInvalid
	case http.StatusUnsupportedMediaType:
		return domain.KindUnsupported
	case http.StatusNotAcceptable:
		return domain.KindNotAcceptable
	default:
		return domain.KindInternal
	}
}

var _ domain.FormatterClient = (*HTTP)(nil)
