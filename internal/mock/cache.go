package mock

import (
	"context"
	"time"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	PortfolioOut []byte

	// etag values
	EtagPortfolio string

	// captured inputs
	TTL time.Duration

	// errors
	GetPortfolioErr     error
	GetEtagPortfolioErr error
	DelPortfolioErr     error

	// call flags
	GetPortfolioCalled     bool
	GetEtagPortfolioCalled bool
	SetPortfolioCalled     bool
	SetEtagPortfolioCalled bool
	DelPortfolioCalled     bool
}

func (c *Cache) GetPortfolio(ctx context.Context) ([]byte, error) {
	c.GetPortfolioCalled = true
	if c.GetPortfolioErr != nil {
		return nil, c.GetPortfolioErr
	}
	return c.PortfolioOut, nil
}

func (c *Cache) GetEtagPortfolio(ctx context.Context) (string, error) {
	c.GetEtagPortfolioCalled = true
	if c.GetEtagPortfolioErr != nil {
		return "", c.GetEtagPortfolioErr
	}
	return c.EtagPortfolio, nil
}

func (c *Cache) SetPortfolio(ctx context.Context, data []byte, ttl time.Duration) {
	c.SetPortfolioCalled = true
	c.PortfolioOut = data
	c.TTL = ttl
}

func (c *Cache) SetEtagPortfolio(ctx context.Context, etag string, ttl time.Duration) {
	c.SetEtagPortfolioCalled = true
	c.EtagPortfolio = etag
}

func (c *Cache) DeletePortfolio(ctx context.Context) error {
	c.DelPortfolioCalled = true
	return c.DelPortfolioErr
}
