package studio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/watzon/penscape/color"
	"github.com/watzon/penscape/theme"
)

type bingResponse struct {
	Images []struct {
		URL           string `json:"url"`
		URLBase       string `json:"urlbase"`
		Title         string `json:"title"`
		Copyright     string `json:"copyright"`
		CopyrightLink string `json:"copyrightlink"`
	} `json:"images"`
}

// DailyImage is Bing's image of the day
type DailyImage struct {
	URL       string
	Title     string
	Copyright string
}

// fetchDailyImage fetches the image-of-the-day metadata and resolves the image URL
func (s *Studio) fetchDailyImage(ctx context.Context) (DailyImage, error) {
	endpoint, err := url.Parse(s.config.BingURL)
	if err != nil {
		return DailyImage{}, fmt.Errorf("invalid image-of-the-day url: %w", err)
	}

	resp, err := s.get(ctx, endpoint.String())
	if err != nil {
		return DailyImage{}, fmt.Errorf("failed to fetch Bing image metadata: %w", err)
	}
	defer resp.Body.Close()

	var data bingResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return DailyImage{}, fmt.Errorf("failed to decode Bing response: %w", err)
	}
	if len(data.Images) == 0 {
		return DailyImage{}, fmt.Errorf("no images found in Bing response")
	}

	img := data.Images[0]
	base := img.URLBase
	if !strings.HasPrefix(base, "http") {
		base = endpoint.Scheme + "://" + endpoint.Host + base
	}

	// Request a 1024x768 image size
	return DailyImage{
		URL:       base + "_1024x768.jpg",
		Title:     img.Title,
		Copyright: img.Copyright,
	}, nil
}

func (s *Studio) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp, nil
}

// GenerateFromBing builds an image theme from Bing's image of the day.
func (s *Studio) GenerateFromBing(ctx context.Context) (theme.Theme, color.Palette, error) {
	daily, err := s.fetchDailyImage(ctx)
	if err != nil {
		return theme.Theme{}, color.Palette{}, err
	}

	resp, err := s.get(ctx, daily.URL)
	if err != nil {
		return theme.Theme{}, color.Palette{}, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	t, p := s.GenerateFromImage(resp.Body)
	if daily.Title != "" {
		t.Name = daily.Title
	}
	if daily.Copyright != "" {
		t.Description = daily.Copyright
	}
	return t, p, nil
}

// DailyTheme generates and saves a theme from the image of the day.
func (s *Studio) DailyTheme(ctx context.Context) (theme.Theme, error) {
	t, _, err := s.GenerateFromBing(ctx)
	if err != nil {
		return theme.Theme{}, err
	}
	if err := s.Save(t); err != nil {
		return theme.Theme{}, err
	}
	return t, nil
}

// StartDaily schedules DailyTheme on the configured cron schedule. It returns nil
// when no schedule is configured. The scheduler stops when ctx is done.
func (s *Studio) StartDaily(ctx context.Context) (*cron.Cron, error) {
	if s.config.DailySchedule == "" {
		return nil, nil
	}

	location, err := s.config.Location()
	if err != nil {
		s.log.Warn("Invalid timezone, defaulting to UTC", zap.String("timezone", s.config.Timezone))
	}

	c := cron.New(cron.WithLocation(location))
	_, err = c.AddFunc(s.config.DailySchedule, func() {
		s.log.Info("Generating theme from Bing image of the day")
		t, err := s.DailyTheme(ctx)
		if err != nil {
			s.log.Error("Failed to generate daily theme", zap.Error(err))
			return
		}
		s.log.Info("Daily theme ready", zap.String("id", t.ID), zap.String("name", t.Name))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule daily theme: %w", err)
	}

	c.Start()
	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return c, nil
}
