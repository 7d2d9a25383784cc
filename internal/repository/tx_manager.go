package repository

import "context"

// TxRepos bundles the repositories sharing one transaction.
type TxRepos interface {
	Orders() OrderRepository
	Groups() DeliveryGroupRepository
	Items() OrderedItemRepository
	PaymentVariants() PaymentVariantRepository
}

// TransactionManager hides begin/commit/rollback from the usecases. The
// purge-then-rebuild sequence of order regeneration runs inside a single
// WithinTx so a failure never leaves a half-built order visible.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
