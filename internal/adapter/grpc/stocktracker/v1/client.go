package stocktrackerv1

import (
	"context"

	"google.golang.org/grpc"
)

// StockTrackerServiceClient is the client API for StockTrackerService
type StockTrackerServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	AddPosition(ctx context.Context, in *AddPositionRequest, opts ...grpc.CallOption) (*PositionResponse, error)
	UpdatePosition(ctx context.Context, in *UpdatePositionRequest, opts ...grpc.CallOption) (*PositionResponse, error)
	DeletePosition(ctx context.Context, in *DeletePositionRequest, opts ...grpc.CallOption) (*DeletePositionResponse, error)
	ListPositions(ctx context.Context, in *ListPositionsRequest, opts ...grpc.CallOption) (*ListPositionsResponse, error)
	GetReturns(ctx context.Context, in *GetReturnsRequest, opts ...grpc.CallOption) (*GetReturnsResponse, error)
}

type stockTrackerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStockTrackerServiceClient wraps cc. Every call is sent with the JSON content-subtype.
func NewStockTrackerServiceClient(cc grpc.ClientConnInterface) StockTrackerServiceClient {
	return &stockTrackerServiceClient{cc: cc}
}

func (c *stockTrackerServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, StockTrackerService_Register_FullMethodName, in, opts)
}

func (c *stockTrackerServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, StockTrackerService_Login_FullMethodName, in, opts)
}

func (c *stockTrackerServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, StockTrackerService_Logout_FullMethodName, in, opts)
}

func (c *stockTrackerServiceClient) AddPosition(ctx context.Context, in *AddPositionRequest, opts ...grpc.CallOption) (*PositionResponse, error) {
	return invoke[PositionResponse](ctx, c.cc, StockTrackerService_AddPosition_FullMethodName, in, opts)
}

func (c *stockTrackerServiceClient) UpdatePosition(ctx context.Context, in *UpdatePositionRequest, opts ...grpc.CallOption) (*PositionResponse, error) {
	return invoke[PositionResponse](ctx, c.cc, StockTrackerService_UpdatePosition_FullMethodName, in, opts)
}

func (c *stockTrackerServiceClient) DeletePosition(ctx context.Context, in *DeletePositionRequest, opts ...grpc.CallOption) (*DeletePositionResponse, error) {
	return invoke[DeletePositionResponse](ctx, c.cc, StockTrackerService_DeletePosition_FullMethodName, in, opts)
}

func (c *stockTrackerServiceClient) ListPositions(ctx context.Context, in *ListPositionsRequest, opts ...grpc.CallOption) (*ListPositionsResponse, error) {
	return invoke[ListPositionsResponse](ctx, c.cc, StockTrackerService_ListPositions_FullMethodName, in, opts)
}

func (c *stockTrackerServiceClient) GetReturns(ctx context.Context, in *GetReturnsRequest, opts ...grpc.CallOption) (*GetReturnsResponse, error) {
	return invoke[GetReturnsResponse](ctx, c.cc, StockTrackerService_GetReturns_FullMethodName, in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
