package dataaccess

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/foxfire/pkg/dataaccess/monitoring"
	"github.com/Jacobbrewer1/foxfire/pkg/entities"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	panelDalName = "panel_dal"

	panelCollection = "panels"
)

// PanelDal stores where the ticket panel was last posted.
type PanelDal interface {
	// SavePanel upserts the panel record for the panel's channel.
	SavePanel(ctx context.Context, panel *entities.Panel) error

	// GetPanel gets the panel record for a channel. ErrNotFound is returned when there is none.
	GetPanel(ctx context.Context, channelID string) (*entities.Panel, error)
}

type panelDalImpl struct {
	// l is the logger.
	l *slog.Logger

	// client is the database.
	client *mongo.Client
}

// NewPanelDal creates a new panel data access layer.
func NewPanelDal(l *slog.Logger, client *mongo.Client) PanelDal {
	l = l.With(slog.String(logging.KeyDal, panelDalName))

	if client == nil {
		l.Warn("MongoDB is nil, this can cause a panic. Proceeding...")
	}

	return &panelDalImpl{
		l:      l,
		client: client,
	}
}

func (p *panelDalImpl) SavePanel(ctx context.Context, panel *entities.Panel) error {
	collection := p.client.Database(mongoDatabase).Collection(panelCollection)

	monitoring.MongoTotalRequests.WithLabelValues(panelDalName, "save_panel", mongoDatabase, panelCollection).Inc()
	t := prometheus.NewTimer(monitoring.MongoLatency.WithLabelValues(panelDalName, "save_panel", mongoDatabase, panelCollection))
	defer t.ObserveDuration()

	opts := options.Update().SetUpsert(true)
	_, err := collection.UpdateOne(ctx, bson.M{"channel_id": panel.ChannelID}, bson.M{"$set": panel}, opts)
	if err != nil {
		return fmt.Errorf("error updating panel: %w", err)
	}

	p.l.Debug("Saved panel record",
		slog.String(logging.KeyChannel, panel.ChannelID),
		slog.String("message_id", panel.MessageID),
	)
	return nil
}

func (p *panelDalImpl) GetPanel(ctx context.Context, channelID string) (*entities.Panel, error) {
	collection := p.client.Database(mongoDatabase).Collection(panelCollection)

	monitoring.MongoTotalRequests.WithLabelValues(panelDalName, "get_panel", mongoDatabase, panelCollection).Inc()
	t := prometheus.NewTimer(monitoring.MongoLatency.WithLabelValues(panelDalName, "get_panel", mongoDatabase, panelCollection))
	defer t.ObserveDuration()

	panel := new(entities.Panel)
	err := collection.FindOne(ctx, bson.M{"channel_id": channelID}).Decode(panel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error getting panel: %w", err)
	}
	return panel, nil
}
