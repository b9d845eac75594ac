package payment

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/donbarbero/booking-api/internal/models"
)

const StatusApproved = "approved"

// Client encapsula o checkout do Mercado Pago. O pagamento é opcional:
// o admin continua podendo confirmar manualmente.
type Client struct {
	preferences preference.Client
	payments    mppayment.Client
}

func New(accessToken string) (*Client, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Client{
		preferences: preference.NewClient(cfg),
		payments:    mppayment.NewClient(cfg),
	}, nil
}

// CreateCheckout cria uma preferência para o agendamento e devolve o link
// de pagamento. O control code vira external_reference para o webhook
// achar o agendamento de volta.
func (c *Client) CreateCheckout(
	ctx context.Context,
	ap *models.Appointment,
	service *models.Service,
) (string, error) {

	req := preference.Request{
		ExternalReference: ap.ControlCode,
		Items: []preference.ItemRequest{
			{
				Title:     service.Name,
				Quantity:  1,
				UnitPrice: service.Price,
			},
		},
	}

	resp, err := c.preferences.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}

// PaymentStatus consulta um pagamento notificado pelo webhook.
func (c *Client) PaymentStatus(
	ctx context.Context,
	paymentID int,
) (status string, externalReference string, err error) {

	resp, err := c.payments.Get(ctx, paymentID)
	if err != nil {
		return "", "", err
	}

	return resp.Status, resp.ExternalReference, nil
}
