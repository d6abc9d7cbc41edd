// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: beanledger/query/v1/query.proto

package queryv1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Lot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Currency      string                 `protobuf:"bytes,1,opt,name=currency,proto3" json:"currency,omitempty"`
	Units         string                 `protobuf:"bytes,2,opt,name=units,proto3" json:"units,omitempty"`
	CostNumber    string                 `protobuf:"bytes,3,opt,name=cost_number,json=costNumber,proto3" json:"cost_number,omitempty"`
	CostCurrency  string                 `protobuf:"bytes,4,opt,name=cost_currency,json=costCurrency,proto3" json:"cost_currency,omitempty"`
	CostDate      string                 `protobuf:"bytes,5,opt,name=cost_date,json=costDate,proto3" json:"cost_date,omitempty"`
	CostLabel     string                 `protobuf:"bytes,6,opt,name=cost_label,json=costLabel,proto3" json:"cost_label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Lot) Reset() {
	*x = Lot{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Lot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Lot) ProtoMessage() {}

func (x *Lot) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Lot.ProtoReflect.Descriptor instead.
func (*Lot) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{0}
}

func (x *Lot) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Lot) GetUnits() string {
	if x != nil {
		return x.Units
	}
	return ""
}

func (x *Lot) GetCostNumber() string {
	if x != nil {
		return x.CostNumber
	}
	return ""
}

func (x *Lot) GetCostCurrency() string {
	if x != nil {
		return x.CostCurrency
	}
	return ""
}

func (x *Lot) GetCostDate() string {
	if x != nil {
		return x.CostDate
	}
	return ""
}

func (x *Lot) GetCostLabel() string {
	if x != nil {
		return x.CostLabel
	}
	return ""
}

type GetLotsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLotsRequest) Reset() {
	*x = GetLotsRequest{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLotsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLotsRequest) ProtoMessage() {}

func (x *GetLotsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLotsRequest.ProtoReflect.Descriptor instead.
func (*GetLotsRequest) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{1}
}

func (x *GetLotsRequest) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

type GetLotsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Lots          []*Lot                 `protobuf:"bytes,2,rep,name=lots,proto3" json:"lots,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLotsResponse) Reset() {
	*x = GetLotsResponse{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLotsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLotsResponse) ProtoMessage() {}

func (x *GetLotsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLotsResponse.ProtoReflect.Descriptor instead.
func (*GetLotsResponse) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{2}
}

func (x *GetLotsResponse) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *GetLotsResponse) GetLots() []*Lot {
	if x != nil {
		return x.Lots
	}
	return nil
}

type Position struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Currency      string                 `protobuf:"bytes,1,opt,name=currency,proto3" json:"currency,omitempty"`
	Units         string                 `protobuf:"bytes,2,opt,name=units,proto3" json:"units,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Position) Reset() {
	*x = Position{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Position) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Position) ProtoMessage() {}

func (x *Position) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Position.ProtoReflect.Descriptor instead.
func (*Position) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{3}
}

func (x *Position) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Position) GetUnits() string {
	if x != nil {
		return x.Units
	}
	return ""
}

type GetBalancesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalancesRequest) Reset() {
	*x = GetBalancesRequest{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalancesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalancesRequest) ProtoMessage() {}

func (x *GetBalancesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalancesRequest.ProtoReflect.Descriptor instead.
func (*GetBalancesRequest) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{4}
}

func (x *GetBalancesRequest) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

type GetBalancesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Positions     []*Position            `protobuf:"bytes,2,rep,name=positions,proto3" json:"positions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalancesResponse) Reset() {
	*x = GetBalancesResponse{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalancesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalancesResponse) ProtoMessage() {}

func (x *GetBalancesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalancesResponse.ProtoReflect.Descriptor instead.
func (*GetBalancesResponse) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{5}
}

func (x *GetBalancesResponse) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *GetBalancesResponse) GetPositions() []*Position {
	if x != nil {
		return x.Positions
	}
	return nil
}

type ListAccountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAccountsRequest) Reset() {
	*x = ListAccountsRequest{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAccountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAccountsRequest) ProtoMessage() {}

func (x *ListAccountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAccountsRequest.ProtoReflect.Descriptor instead.
func (*ListAccountsRequest) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{6}
}

type ListAccountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accounts      []string               `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAccountsResponse) Reset() {
	*x = ListAccountsResponse{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAccountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAccountsResponse) ProtoMessage() {}

func (x *ListAccountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAccountsResponse.ProtoReflect.Descriptor instead.
func (*ListAccountsResponse) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{7}
}

func (x *ListAccountsResponse) GetAccounts() []string {
	if x != nil {
		return x.Accounts
	}
	return nil
}

type GetPriceAtRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Currency      string                 `protobuf:"bytes,1,opt,name=currency,proto3" json:"currency,omitempty"`
	Date          string                 `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"` // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPriceAtRequest) Reset() {
	*x = GetPriceAtRequest{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPriceAtRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPriceAtRequest) ProtoMessage() {}

func (x *GetPriceAtRequest) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPriceAtRequest.ProtoReflect.Descriptor instead.
func (*GetPriceAtRequest) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{8}
}

func (x *GetPriceAtRequest) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *GetPriceAtRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

type GetPriceAtResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Currency      string                 `protobuf:"bytes,1,opt,name=currency,proto3" json:"currency,omitempty"`
	Date          string                 `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"` // observation date
	Number        string                 `protobuf:"bytes,3,opt,name=number,proto3" json:"number,omitempty"`
	QuoteCurrency string                 `protobuf:"bytes,4,opt,name=quote_currency,json=quoteCurrency,proto3" json:"quote_currency,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPriceAtResponse) Reset() {
	*x = GetPriceAtResponse{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPriceAtResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPriceAtResponse) ProtoMessage() {}

func (x *GetPriceAtResponse) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPriceAtResponse.ProtoReflect.Descriptor instead.
func (*GetPriceAtResponse) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{9}
}

func (x *GetPriceAtResponse) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *GetPriceAtResponse) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *GetPriceAtResponse) GetNumber() string {
	if x != nil {
		return x.Number
	}
	return ""
}

func (x *GetPriceAtResponse) GetQuoteCurrency() string {
	if x != nil {
		return x.QuoteCurrency
	}
	return ""
}

type BookedDirective struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Sequence      int64                  `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Date          string                 `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	Kind          string                 `protobuf:"bytes,4,opt,name=kind,proto3" json:"kind,omitempty"`
	Payload       []byte                 `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"` // directive wire JSON
	BookError     string                 `protobuf:"bytes,6,opt,name=book_error,json=bookError,proto3" json:"book_error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BookedDirective) Reset() {
	*x = BookedDirective{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BookedDirective) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BookedDirective) ProtoMessage() {}

func (x *BookedDirective) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BookedDirective.ProtoReflect.Descriptor instead.
func (*BookedDirective) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{10}
}

func (x *BookedDirective) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *BookedDirective) GetSequence() int64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *BookedDirective) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *BookedDirective) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *BookedDirective) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *BookedDirective) GetBookError() string {
	if x != nil {
		return x.BookError
	}
	return ""
}

type ListDirectivesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	FromSequence  int64                  `protobuf:"varint,2,opt,name=from_sequence,json=fromSequence,proto3" json:"from_sequence,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDirectivesRequest) Reset() {
	*x = ListDirectivesRequest{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDirectivesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDirectivesRequest) ProtoMessage() {}

func (x *ListDirectivesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDirectivesRequest.ProtoReflect.Descriptor instead.
func (*ListDirectivesRequest) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{11}
}

func (x *ListDirectivesRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ListDirectivesRequest) GetFromSequence() int64 {
	if x != nil {
		return x.FromSequence
	}
	return 0
}

func (x *ListDirectivesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListDirectivesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Directives    []*BookedDirective     `protobuf:"bytes,2,rep,name=directives,proto3" json:"directives,omitempty"`
	NextSequence  int64                  `protobuf:"varint,3,opt,name=next_sequence,json=nextSequence,proto3" json:"next_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDirectivesResponse) Reset() {
	*x = ListDirectivesResponse{}
	mi := &file_beanledger_query_v1_query_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDirectivesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDirectivesResponse) ProtoMessage() {}

func (x *ListDirectivesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_query_v1_query_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDirectivesResponse.ProtoReflect.Descriptor instead.
func (*ListDirectivesResponse) Descriptor() ([]byte, []int) {
	return file_beanledger_query_v1_query_proto_rawDescGZIP(), []int{12}
}

func (x *ListDirectivesResponse) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ListDirectivesResponse) GetDirectives() []*BookedDirective {
	if x != nil {
		return x.Directives
	}
	return nil
}

func (x *ListDirectivesResponse) GetNextSequence() int64 {
	if x != nil {
		return x.NextSequence
	}
	return 0
}

var File_beanledger_query_v1_query_proto protoreflect.FileDescriptor

const file_beanledger_query_v1_query_proto_rawDesc = "" +
	"\n" +
	"\x1fbeanledger/query/v1/query.proto\x12\x13beanledger.query.v1\x1a\x1cgoogle/api/annotations.proto\"\xb9\x01\n" +
	"\x03Lot\x12\x1a\n" +
	"\bcurrency\x18\x01 \x01(\tR\bcurrency\x12\x14\n" +
	"\x05units\x18\x02 \x01(\tR\x05units\x12\x1f\n" +
	"\vcost_number\x18\x03 \x01(\tR\n" +
	"costNumber\x12#\n" +
	"\rcost_currency\x18\x04 \x01(\tR\fcostCurrency\x12\x1b\n" +
	"\tcost_date\x18\x05 \x01(\tR\bcostDate\x12\x1d\n" +
	"\n" +
	"cost_label\x18\x06 \x01(\tR\tcostLabel\"*\n" +
	"\x0eGetLotsRequest\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\"Y\n" +
	"\x0fGetLotsResponse\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\x12,\n" +
	"\x04lots\x18\x02 \x03(\v2\x18.beanledger.query.v1.LotR\x04lots\"<\n" +
	"\bPosition\x12\x1a\n" +
	"\bcurrency\x18\x01 \x01(\tR\bcurrency\x12\x14\n" +
	"\x05units\x18\x02 \x01(\tR\x05units\".\n" +
	"\x12GetBalancesRequest\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\"l\n" +
	"\x13GetBalancesResponse\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\x12;\n" +
	"\tpositions\x18\x02 \x03(\v2\x1d.beanledger.query.v1.PositionR\tpositions\"\x15\n" +
	"\x13ListAccountsRequest\"2\n" +
	"\x14ListAccountsResponse\x12\x1a\n" +
	"\baccounts\x18\x01 \x03(\tR\baccounts\"C\n" +
	"\x11GetPriceAtRequest\x12\x1a\n" +
	"\bcurrency\x18\x01 \x01(\tR\bcurrency\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\"\x83\x01\n" +
	"\x12GetPriceAtResponse\x12\x1a\n" +
	"\bcurrency\x18\x01 \x01(\tR\bcurrency\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\x12\x16\n" +
	"\x06number\x18\x03 \x01(\tR\x06number\x12%\n" +
	"\x0equote_currency\x18\x04 \x01(\tR\rquoteCurrency\"\xa5\x01\n" +
	"\x0fBookedDirective\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x1a\n" +
	"\bsequence\x18\x02 \x01(\x03R\bsequence\x12\x12\n" +
	"\x04date\x18\x03 \x01(\tR\x04date\x12\x12\n" +
	"\x04kind\x18\x04 \x01(\tR\x04kind\x12\x18\n" +
	"\apayload\x18\x05 \x01(\fR\apayload\x12\x1d\n" +
	"\n" +
	"book_error\x18\x06 \x01(\tR\tbookError\"p\n" +
	"\x15ListDirectivesRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12#\n" +
	"\rfrom_sequence\x18\x02 \x01(\x03R\ffromSequence\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"\x9a\x01\n" +
	"\x16ListDirectivesResponse\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12D\n" +
	"\n" +
	"directives\x18\x02 \x03(\v2$.beanledger.query.v1.BookedDirectiveR\n" +
	"directives\x12#\n" +
	"\rnext_sequence\x18\x03 \x01(\x03R\fnextSequence2\xa0\x05\n" +
	"\fQueryService\x12y\n" +
	"\aGetLots\x12#.beanledger.query.v1.GetLotsRequest\x1a$.beanledger.query.v1.GetLotsResponse\"#\x82\xd3\xe4\x93\x02\x1d\x12\x1b/v1/accounts/{account}/lots\x12\x89\x01\n" +
	"\vGetBalances\x12'.beanledger.query.v1.GetBalancesRequest\x1a(.beanledger.query.v1.GetBalancesResponse\"'\x82\xd3\xe4\x93\x02!\x12\x1f/v1/accounts/{account}/balances\x12y\n" +
	"\fListAccounts\x12(.beanledger.query.v1.ListAccountsRequest\x1a).beanledger.query.v1.ListAccountsResponse\"\x14\x82\xd3\xe4\x93\x02\x0e\x12\f/v1/accounts\x12|\n" +
	"\n" +
	"GetPriceAt\x12&.beanledger.query.v1.GetPriceAtRequest\x1a'.beanledger.query.v1.GetPriceAtResponse\"\x1d\x82\xd3\xe4\x93\x02\x17\x12\x15/v1/prices/{currency}\x12\x8f\x01\n" +
	"\x0eListDirectives\x12*.beanledger.query.v1.ListDirectivesRequest\x1a+.beanledger.query.v1.ListDirectivesResponse\"$\x82\xd3\xe4\x93\x02\x1e\x12\x1c/v1/runs/{run_id}/directivesB/Z-BeanLedger/gen/go/beanledger/query/v1;queryv1b\x06proto3"

var (
	file_beanledger_query_v1_query_proto_rawDescOnce sync.Once
	file_beanledger_query_v1_query_proto_rawDescData []byte
)

func file_beanledger_query_v1_query_proto_rawDescGZIP() []byte {
	file_beanledger_query_v1_query_proto_rawDescOnce.Do(func() {
		file_beanledger_query_v1_query_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_beanledger_query_v1_query_proto_rawDesc), len(file_beanledger_query_v1_query_proto_rawDesc)))
	})
	return file_beanledger_query_v1_query_proto_rawDescData
}

var file_beanledger_query_v1_query_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_beanledger_query_v1_query_proto_goTypes = []any{
	(*Lot)(nil),                    // 0: beanledger.query.v1.Lot
	(*GetLotsRequest)(nil),         // 1: beanledger.query.v1.GetLotsRequest
	(*GetLotsResponse)(nil),        // 2: beanledger.query.v1.GetLotsResponse
	(*Position)(nil),               // 3: beanledger.query.v1.Position
	(*GetBalancesRequest)(nil),     // 4: beanledger.query.v1.GetBalancesRequest
	(*GetBalancesResponse)(nil),    // 5: beanledger.query.v1.GetBalancesResponse
	(*ListAccountsRequest)(nil),    // 6: beanledger.query.v1.ListAccountsRequest
	(*ListAccountsResponse)(nil),   // 7: beanledger.query.v1.ListAccountsResponse
	(*GetPriceAtRequest)(nil),      // 8: beanledger.query.v1.GetPriceAtRequest
	(*GetPriceAtResponse)(nil),     // 9: beanledger.query.v1.GetPriceAtResponse
	(*BookedDirective)(nil),        // 10: beanledger.query.v1.BookedDirective
	(*ListDirectivesRequest)(nil),  // 11: beanledger.query.v1.ListDirectivesRequest
	(*ListDirectivesResponse)(nil), // 12: beanledger.query.v1.ListDirectivesResponse
}
var file_beanledger_query_v1_query_proto_depIdxs = []int32{
	0,  // 0: beanledger.query.v1.GetLotsResponse.lots:type_name -> beanledger.query.v1.Lot
	3,  // 1: beanledger.query.v1.GetBalancesResponse.positions:type_name -> beanledger.query.v1.Position
	10, // 2: beanledger.query.v1.ListDirectivesResponse.directives:type_name -> beanledger.query.v1.BookedDirective
	1,  // 3: beanledger.query.v1.QueryService.GetLots:input_type -> beanledger.query.v1.GetLotsRequest
	4,  // 4: beanledger.query.v1.QueryService.GetBalances:input_type -> beanledger.query.v1.GetBalancesRequest
	6,  // 5: beanledger.query.v1.QueryService.ListAccounts:input_type -> beanledger.query.v1.ListAccountsRequest
	8,  // 6: beanledger.query.v1.QueryService.GetPriceAt:input_type -> beanledger.query.v1.GetPriceAtRequest
	11, // 7: beanledger.query.v1.QueryService.ListDirectives:input_type -> beanledger.query.v1.ListDirectivesRequest
	2,  // 8: beanledger.query.v1.QueryService.GetLots:output_type -> beanledger.query.v1.GetLotsResponse
	5,  // 9: beanledger.query.v1.QueryService.GetBalances:output_type -> beanledger.query.v1.GetBalancesResponse
	7,  // 10: beanledger.query.v1.QueryService.ListAccounts:output_type -> beanledger.query.v1.ListAccountsResponse
	9,  // 11: beanledger.query.v1.QueryService.GetPriceAt:output_type -> beanledger.query.v1.GetPriceAtResponse
	12, // 12: beanledger.query.v1.QueryService.ListDirectives:output_type -> beanledger.query.v1.ListDirectivesResponse
	8,  // [8:13] is the sub-list for method output_type
	3,  // [3:8] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_beanledger_query_v1_query_proto_init() }
func file_beanledger_query_v1_query_proto_init() {
	if File_beanledger_query_v1_query_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_beanledger_query_v1_query_proto_rawDesc), len(file_beanledger_query_v1_query_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_beanledger_query_v1_query_proto_goTypes,
		DependencyIndexes: file_beanledger_query_v1_query_proto_depIdxs,
		MessageInfos:      file_beanledger_query_v1_query_proto_msgTypes,
	}.Build()
	File_beanledger_query_v1_query_proto = out.File
	file_beanledger_query_v1_query_proto_goTypes = nil
	file_beanledger_query_v1_query_proto_depIdxs = nil
}
