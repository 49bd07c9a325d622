package affiliate

import (
	"errors"
	"net/url"

	"github.com/fizzlab/sodacraft/internal/models"
)

var (
	ErrNoASIN = errors.New("product has no ASIN")
)

// LinkBuilder builds tag-stamped retailer detail-page URLs
type LinkBuilder struct {
	partnerTag string
	baseURL    string
}

// NewLinkBuilder creates a link builder for the given partner tag
func NewLinkBuilder(partnerTag string) *LinkBuilder {
	return &LinkBuilder{
		partnerTag: partnerTag,
		baseURL:    "https://www.amazon.com",
	}
}

// BuildLink returns the affiliate URL for a product's detail page
func (b *LinkBuilder) BuildLink(product models.Product) (string, error) {
	if product.ASIN == "" {
		return "", ErrNoASIN
	}

	u, err := url.Parse(b.baseURL + "/dp/" + url.PathEscape(product.ASIN))
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("tag", b.partnerTag)
	q.Set("linkCode", "ll1")
	u.RawQuery = q.Encode()

	return u.String(), nil
}
