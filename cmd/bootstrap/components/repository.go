package components

import (
	"hoteltrack/internal/infra/gormstore"
	"hoteltrack/internal/usecase/commands"
	"hoteltrack/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories
		fx.Annotate(
			gormstore.NewRoomTypeRepo,
			fx.As(new(commands.RoomTypeRepository)),
		),
		fx.Annotate(
			gormstore.NewRoomRepo,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			gormstore.NewGuestRepo,
			fx.As(new(commands.GuestRepository)),
		),
		fx.Annotate(
			gormstore.NewBlockRepo,
			fx.As(new(commands.BlockRepository)),
		),
		fx.Annotate(
			gormstore.NewReservationRepo,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			gormstore.NewStayRepo,
			fx.As(new(commands.StayRepository)),
		),
		fx.Annotate(
			gormstore.NewChargeRepo,
			fx.As(new(commands.ChargeRepository)),
		),
		fx.Annotate(
			gormstore.NewInvoiceRepo,
			fx.As(new(commands.InvoiceRepository)),
		),
		fx.Annotate(
			gormstore.NewPaymentRepo,
			fx.As(new(commands.PaymentRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			gormstore.NewRoomReads,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			gormstore.NewGuestReads,
			fx.As(new(queries.GuestReadStore)),
		),
		fx.Annotate(
			gormstore.NewReservationReads,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			gormstore.NewStayReads,
			fx.As(new(queries.StayReadStore)),
		),
		fx.Annotate(
			gormstore.NewInvoiceReads,
			fx.As(new(queries.InvoiceReadStore)),
		),
		fx.Annotate(
			gormstore.NewPaymentReads,
			fx.As(new(queries.PaymentReadStore)),
		),
	),
)
