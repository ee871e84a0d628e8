package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListOrders(ctx context.Context) ([]*Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) GetOrder(ctx context.Context, id string) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) ListOrderItems(ctx context.Context, orderID string) ([]*OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*OrderItem), args.Error(1)
}

func (m *MockRepository) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) UpdateStatusGuard(ctx context.Context, id string, from, to OrderStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockRepository) DeleteOrder(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Stats(ctx context.Context) (*Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Stats), args.Error(1)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	validInput := CreateOrderInput{
		CustomerName: "Dad",
		Items: []NewOrderItem{
			{MenuItemID: "x", Name: "Berry Blast"},
			{MenuItemID: "y", Name: "Green Machine"},
		},
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(false))

		repo.On("CreateOrder", ctx, validInput).
			Return(&Order{ID: "o-1", CustomerName: "Dad", Status: StatusPending}, nil)

		o, err := svc.Create(ctx, validInput)
		assert.NoError(t, err)
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("MissingNameRejectedBeforeStore", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(false))

		_, err := svc.Create(ctx, CreateOrderInput{
			CustomerName: "   ",
			Items:        validInput.Items,
		})
		assert.ErrorIs(t, err, ErrCustomerNameRequired)
		repo.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("EmptyCartRejectedBeforeStore", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(false))

		_, err := svc.Create(ctx, CreateOrderInput{CustomerName: "Dad"})
		assert.ErrorIs(t, err, ErrEmptyOrder)
		repo.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("ItemWithoutMenuReferenceRejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(false))

		_, err := svc.Create(ctx, CreateOrderInput{
			CustomerName: "Dad",
			Items:        []NewOrderItem{{Name: "mystery"}},
		})
		assert.ErrorIs(t, err, ErrMenuItemRequired)
	})
}

func TestService_UpdateStatus_Permissive(t *testing.T) {
	ctx := context.Background()

	t.Run("WritesDirectly", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(false))

		repo.On("UpdateStatus", ctx, "o-1", StatusCompleted).
			Return(&Order{ID: "o-1", Status: StatusCompleted}, nil)

		o, err := svc.UpdateStatus(ctx, "o-1", StatusCompleted)
		assert.NoError(t, err)
		assert.Equal(t, StatusCompleted, o.Status)
		repo.AssertNotCalled(t, "GetOrder")
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(false))

		_, err := svc.UpdateStatus(ctx, "o-1", "exploded")
		assert.ErrorIs(t, err, ErrUnknownStatus)
		repo.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestService_UpdateStatus_Strict(t *testing.T) {
	ctx := context.Background()

	t.Run("AdjacentStepGuarded", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(true))

		repo.On("GetOrder", ctx, "o-1").
			Return(&Order{ID: "o-1", Status: StatusBlending}, nil)
		repo.On("UpdateStatusGuard", ctx, "o-1", StatusBlending, StatusReady).
			Return(nil)

		o, err := svc.UpdateStatus(ctx, "o-1", StatusReady)
		assert.NoError(t, err)
		assert.Equal(t, StatusReady, o.Status)
	})

	t.Run("JumpRejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(true))

		repo.On("GetOrder", ctx, "o-1").
			Return(&Order{ID: "o-1", Status: StatusPending}, nil)

		_, err := svc.UpdateStatus(ctx, "o-1", StatusCompleted)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		repo.AssertNotCalled(t, "UpdateStatusGuard")
	})

	t.Run("ConcurrentStaffLosesRace", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(true))

		repo.On("GetOrder", ctx, "o-1").
			Return(&Order{ID: "o-1", Status: StatusPending}, nil)
		repo.On("UpdateStatusGuard", ctx, "o-1", StatusPending, StatusBlending).
			Return(ErrStatusConflict)

		_, err := svc.UpdateStatus(ctx, "o-1", StatusBlending)
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(true))

		repo.On("GetOrder", ctx, "ghost").Return(nil, ErrOrderNotFound)

		_, err := svc.UpdateStatus(ctx, "ghost", StatusBlending)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("PermissiveDeletesAnything", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(false))

		repo.On("DeleteOrder", ctx, "o-1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "o-1"))
		repo.AssertNotCalled(t, "GetOrder")
	})

	t.Run("StrictBlocksCompletedOrders", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(true))

		repo.On("GetOrder", ctx, "o-1").
			Return(&Order{ID: "o-1", Status: StatusCompleted}, nil)

		err := svc.Delete(ctx, "o-1")
		assert.ErrorIs(t, err, ErrOrderCompleted)
		repo.AssertNotCalled(t, "DeleteOrder")
	})

	t.Run("StrictDeletesActiveOrders", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(true))

		repo.On("GetOrder", ctx, "o-1").
			Return(&Order{ID: "o-1", Status: StatusReady}, nil)
		repo.On("DeleteOrder", ctx, "o-1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "o-1"))
	})
}

func TestService_Queue(t *testing.T) {
	ctx := context.Background()
	base := time.Now()

	t.Run("JoinsItemsAndDerives", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(false))

		repo.On("ListOrders", ctx).Return([]*Order{
			{ID: "o-2", Status: StatusPending, CreatedAt: base},
			{ID: "o-1", Status: StatusBlending, CreatedAt: base.Add(-time.Minute)},
			{ID: "o-0", Status: StatusCompleted, CreatedAt: base.Add(-2 * time.Minute)},
		}, nil)
		repo.On("ListOrderItems", ctx, "").Return([]*OrderItem{
			{ID: "i-1", OrderID: "o-1", Name: "Berry Blast"},
			{ID: "i-2", OrderID: "o-2", Name: "Green Machine"},
		}, nil)

		queue, err := svc.Queue(ctx)
		assert.NoError(t, err)
		require.Len(t, queue, 2)

		// Oldest active first, completed excluded, items joined in.
		assert.Equal(t, "o-1", queue[0].Order.ID)
		require.Len(t, queue[0].Order.Items, 1)
		assert.Equal(t, "Berry Blast", queue[0].Order.Items[0].Name)
		assert.Equal(t, "o-2", queue[1].Order.ID)
	})

	t.Run("ListError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, NewEngine(false))

		repo.On("ListOrders", ctx).Return(nil, errors.New("db down"))

		_, err := svc.Queue(ctx)
		assert.Error(t, err)
	})
}
