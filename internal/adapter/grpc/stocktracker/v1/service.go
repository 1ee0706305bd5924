package stocktrackerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "stocktracker.v1.StockTrackerService"

// Full method names, as seen by interceptors
const (
	StockTrackerService_Register_FullMethodName       = "/" + ServiceName + "/Register"
	StockTrackerService_Login_FullMethodName          = "/" + ServiceName + "/Login"
	StockTrackerService_Logout_FullMethodName         = "/" + ServiceName + "/Logout"
	StockTrackerService_AddPosition_FullMethodName    = "/" + ServiceName + "/AddPosition"
	StockTrackerService_UpdatePosition_FullMethodName = "/" + ServiceName + "/UpdatePosition"
	StockTrackerService_DeletePosition_FullMethodName = "/" + ServiceName + "/DeletePosition"
	StockTrackerService_ListPositions_FullMethodName  = "/" + ServiceName + "/ListPositions"
	StockTrackerService_GetReturns_FullMethodName     = "/" + ServiceName + "/GetReturns"
)

// StockTrackerServiceServer is the server API for StockTrackerService
type StockTrackerServiceServer interface {
	Register(context.Context, *RegisterRequest) (*SessionResponse, error)
	Login(context.Context, *LoginRequest) (*SessionResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	AddPosition(context.Context, *AddPositionRequest) (*PositionResponse, error)
	UpdatePosition(context.Context, *UpdatePositionRequest) (*PositionResponse, error)
	DeletePosition(context.Context, *DeletePositionRequest) (*DeletePositionResponse, error)
	ListPositions(context.Context, *ListPositionsRequest) (*ListPositionsResponse, error)
	GetReturns(context.Context, *GetReturnsRequest) (*GetReturnsResponse, error)
}

// UnimplementedStockTrackerServiceServer can be embedded to have forward compatible implementations
type UnimplementedStockTrackerServiceServer struct{}

func (UnimplementedStockTrackerServiceServer) Register(context.Context, *RegisterRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedStockTrackerServiceServer) Login(context.Context, *LoginRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedStockTrackerServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedStockTrackerServiceServer) AddPosition(context.Context, *AddPositionRequest) (*PositionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddPosition not implemented")
}
func (UnimplementedStockTrackerServiceServer) UpdatePosition(context.Context, *UpdatePositionRequest) (*PositionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePosition not implemented")
}
func (UnimplementedStockTrackerServiceServer) DeletePosition(context.Context, *DeletePositionRequest) (*DeletePositionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePosition not implemented")
}
func (UnimplementedStockTrackerServiceServer) ListPositions(context.Context, *ListPositionsRequest) (*ListPositionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPositions not implemented")
}
func (UnimplementedStockTrackerServiceServer) GetReturns(context.Context, *GetReturnsRequest) (*GetReturnsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReturns not implemented")
}

// RegisterStockTrackerServiceServer registers srv on s
func RegisterStockTrackerServiceServer(s grpc.ServiceRegistrar, srv StockTrackerServiceServer) {
	s.RegisterService(&StockTrackerService_ServiceDesc, srv)
}

// StockTrackerService_ServiceDesc is the grpc.ServiceDesc for StockTrackerService
var StockTrackerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StockTrackerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("Register", StockTrackerServiceServer.Register),
		unaryMethod("Login", StockTrackerServiceServer.Login),
		unaryMethod("Logout", StockTrackerServiceServer.Logout),
		unaryMethod("AddPosition", StockTrackerServiceServer.AddPosition),
		unaryMethod("UpdatePosition", StockTrackerServiceServer.UpdatePosition),
		unaryMethod("DeletePosition", StockTrackerServiceServer.DeletePosition),
		unaryMethod("ListPositions", StockTrackerServiceServer.ListPositions),
		unaryMethod("GetReturns", StockTrackerServiceServer.GetReturns),
	},
	Streams: []grpc.StreamDesc{},
}

func unaryMethod[Req, Resp any](name string, call func(StockTrackerServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StockTrackerServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(StockTrackerServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
