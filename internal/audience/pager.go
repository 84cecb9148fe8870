package audience

import (
	"context"
	"fmt"
	"net/url"
)

// ContactPager iterates over a remote audience one page at a time. The cursor
// is the id of the last contact on the previous page; iteration stops on a
// short page or when the provider reports no more pages. Summing page sizes is
// left to the caller.
type ContactPager struct {
	client     *RestClient
	audienceID string
	after      string
	done       bool
}

// Pages returns a fresh pager over the audience's contacts.
func (c *RestClient) Pages(audienceID string) *ContactPager {
	return &ContactPager{client: c, audienceID: audienceID}
}

type listContactsResponse struct {
	Data    []Contact `json:"data"`
	HasMore bool      `json:"has_more"`
}

// Next fetches the next page. The second return value is false once the
// collection is exhausted; the accompanying page may still hold contacts.
func (p *ContactPager) Next(ctx context.Context) ([]Contact, bool, error) {
	if p.done {
		return nil, false, nil
	}

	query := url.Values{}
	query.Set("limit", fmt.Sprintf("%d", contactPageSize))
	if p.after != "" {
		query.Set("after", p.after)
	}

	path := fmt.Sprintf("/audiences/%s/contacts?%s", p.audienceID, query.Encode())

	var page listContactsResponse
	if err := p.client.do(ctx, "GET", path, nil, &page); err != nil {
		p.done = true
		return nil, false, err
	}

	if len(page.Data) == 0 {
		p.done = true
		return nil, false, nil
	}

	if !page.HasMore || len(page.Data) < contactPageSize {
		p.done = true
		return page.Data, false, nil
	}

	p.after = page.Data[len(page.Data)-1].ID
	return page.Data, true, nil
}
