//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/chartops/chartsync/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	assets        []entities.AssetConfig
	days          int
	emaSpans      []int
	imgurClientID string
	publish       entities.PublishConfig
	workDir       string
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		assets: []entities.AssetConfig{
			{Symbol: "ETH", CoinID: "ethereum"},
		},
		days:          7,
		emaSpans:      []int{10, 20},
		imgurClientID: "test-client-id",
		publish: entities.PublishConfig{
			RepoURL:       "https://example.com/org/charts.git",
			Branch:        "main",
			Token:         "test-token",
			RelayPath:     entities.RelayFileName,
			CommitMessage: "Update chart URLs",
			AuthorName:    "chartsync",
			AuthorEmail:   "chartsync@example.com",
		},
		workDir: ".",
	}
}

// WithAssets sets the tracked assets.
func (b *SettingsBuilder) WithAssets(assets ...entities.AssetConfig) *SettingsBuilder {
	b.assets = assets
	return b
}

// WithImgurClientID sets the image host credential.
func (b *SettingsBuilder) WithImgurClientID(clientID string) *SettingsBuilder {
	b.imgurClientID = clientID
	return b
}

// WithPublish sets the publish repository configuration.
func (b *SettingsBuilder) WithPublish(publish entities.PublishConfig) *SettingsBuilder {
	b.publish = publish
	return b
}

// WithPublishToken sets only the publish token.
func (b *SettingsBuilder) WithPublishToken(token string) *SettingsBuilder {
	b.publish.Token = token
	return b
}

// WithWorkDir sets the work directory.
func (b *SettingsBuilder) WithWorkDir(workDir string) *SettingsBuilder {
	b.workDir = workDir
	return b
}

// Build assembles the settings.
func (b *SettingsBuilder) Build() *entities.Settings {
	return &entities.Settings{
		Assets: b.assets,
		Chart: entities.ChartConfig{
			Days:         b.days,
			EMASpans:     b.emaSpans,
			WidthInches:  12,
			HeightInches: 7,
			DPI:          300,
		},
		Imgur:   entities.ImgurConfig{ClientID: b.imgurClientID},
		Publish: b.publish,
		WorkDir: b.workDir,
	}
}
