package payrun

import "context"

type PayrunService interface {
	Run(ctx context.Context, req RunRequest) (PayrunResponse, error)
	Get(ctx context.Context, id string) (PayrunResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (PayrunResponse, error)
	GenerateRegisterXLSX(ctx context.Context, id string) ([]byte, string, error)

	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
