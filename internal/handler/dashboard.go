package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/btspl-dev/asset-tracker/backend/internal/derive"
	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats := derive.DashboardStats(h.repository.GetAllAssets())
	h.successResponse(w, r, "dashboard stats calculated", stats)
}

// SendWarrantyAlerts queues one alert mail per employee holding assets whose
// warranty is expired or about to expire. Unassigned assets have nobody to
// notify and are skipped.
func (h *Handler) SendWarrantyAlerts(w http.ResponseWriter, r *http.Request) {
	expiring := derive.ExpiringAssets(h.repository.GetAllAssets(), time.Now(), h.config.Warranty.ExpiryHorizonDays)

	recipients := make(map[string]*domain.WarrantyAlertMailData)
	order := make([]string, 0)
	for _, asset := range expiring {
		if !asset.Assigned() || asset.EmployeeEmail == "" {
			continue
		}
		data, ok := recipients[asset.EmployeeEmail]
		if !ok {
			data = &domain.WarrantyAlertMailData{DisplayName: asset.EmployeeName}
			recipients[asset.EmployeeEmail] = data
			order = append(order, asset.EmployeeEmail)
		}
		data.Assets = append(data.Assets, domain.WarrantyAlertAsset{
			AssetCode:       asset.AssetCode,
			AssetType:       string(asset.AssetType),
			WarrantyEndDate: asset.WarrantyEndDate.Format(dateLayout),
			WarrantyStatus:  string(asset.WarrantyStatus),
		})
	}

	queued := 0
	for _, email := range order {
		mailMessage := domain.MailMessage{
			Type: "warranty_alert",
			To:   email,
			Data: recipients[email],
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
		err = h.mailChannel.PublishWithContext(
			ctx,
			"",
			"email_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		)
		cancel()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		queued++
	}

	h.successResponse(w, r, "warranty alerts queued", map[string]int{
		"expiringAssets": len(expiring),
		"alertsQueued":   queued,
	})
}
