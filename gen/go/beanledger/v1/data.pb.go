// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: beanledger/v1/data.proto

package beanledgerv1

import (
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

type Booking int32

const (
	Booking_BOOKING_UNKNOWN Booking = 0
	Booking_BOOKING_STRICT  Booking = 1
	Booking_BOOKING_NONE    Booking = 2
	Booking_BOOKING_AVERAGE Booking = 3
	Booking_BOOKING_FIFO    Booking = 4
	Booking_BOOKING_LIFO    Booking = 5
)

// Enum value maps for Booking.
var (
	Booking_name = map[int32]string{
		0: "BOOKING_UNKNOWN",
		1: "BOOKING_STRICT",
		2: "BOOKING_NONE",
		3: "BOOKING_AVERAGE",
		4: "BOOKING_FIFO",
		5: "BOOKING_LIFO",
	}
	Booking_value = map[string]int32{
		"BOOKING_UNKNOWN": 0,
		"BOOKING_STRICT":  1,
		"BOOKING_NONE":    2,
		"BOOKING_AVERAGE": 3,
		"BOOKING_FIFO":    4,
		"BOOKING_LIFO":    5,
	}
)

func (x Booking) Enum() *Booking {
	p := new(Booking)
	*p = x
	return p
}

func (x Booking) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Booking) Descriptor() protoreflect.EnumDescriptor {
	return file_beanledger_v1_data_proto_enumTypes[0].Descriptor()
}

func (Booking) Type() protoreflect.EnumType {
	return &file_beanledger_v1_data_proto_enumTypes[0]
}

func (x Booking) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Booking.Descriptor instead.
func (Booking) EnumDescriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{0}
}

type Date struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Year          int32                  `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`
	Month         int32                  `protobuf:"varint,2,opt,name=month,proto3" json:"month,omitempty"`
	Day           int32                  `protobuf:"varint,3,opt,name=day,proto3" json:"day,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Date) Reset() {
	*x = Date{}
	mi := &file_beanledger_v1_data_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Date) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Date) ProtoMessage() {}

func (x *Date) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Date.ProtoReflect.Descriptor instead.
func (*Date) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{0}
}

func (x *Date) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *Date) GetMonth() int32 {
	if x != nil {
		return x.Month
	}
	return 0
}

func (x *Date) GetDay() int32 {
	if x != nil {
		return x.Day
	}
	return 0
}

type Amount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Number        string                 `protobuf:"bytes,1,opt,name=number,proto3" json:"number,omitempty"`
	Currency      string                 `protobuf:"bytes,2,opt,name=currency,proto3" json:"currency,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Amount) Reset() {
	*x = Amount{}
	mi := &file_beanledger_v1_data_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Amount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Amount) ProtoMessage() {}

func (x *Amount) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Amount.ProtoReflect.Descriptor instead.
func (*Amount) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{1}
}

func (x *Amount) GetNumber() string {
	if x != nil {
		return x.Number
	}
	return ""
}

func (x *Amount) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

// A fully resolved acquisition cost.
type Cost struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Number        string                 `protobuf:"bytes,1,opt,name=number,proto3" json:"number,omitempty"`
	Currency      string                 `protobuf:"bytes,2,opt,name=currency,proto3" json:"currency,omitempty"`
	Date          *Date                  `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	Label         string                 `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Cost) Reset() {
	*x = Cost{}
	mi := &file_beanledger_v1_data_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Cost) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Cost) ProtoMessage() {}

func (x *Cost) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Cost.ProtoReflect.Descriptor instead.
func (*Cost) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{2}
}

func (x *Cost) GetNumber() string {
	if x != nil {
		return x.Number
	}
	return ""
}

func (x *Cost) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Cost) GetDate() *Date {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *Cost) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

// A partially specified cost on input postings. Unset fields are
// resolved by the booking engine.
type CostSpec struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Number        *string                `protobuf:"bytes,1,opt,name=number,proto3,oneof" json:"number,omitempty"`
	Currency      string                 `protobuf:"bytes,2,opt,name=currency,proto3" json:"currency,omitempty"`
	Date          *Date                  `protobuf:"bytes,3,opt,name=date,proto3,oneof" json:"date,omitempty"`
	Label         string                 `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CostSpec) Reset() {
	*x = CostSpec{}
	mi := &file_beanledger_v1_data_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CostSpec) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CostSpec) ProtoMessage() {}

func (x *CostSpec) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CostSpec.ProtoReflect.Descriptor instead.
func (*CostSpec) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{3}
}

func (x *CostSpec) GetNumber() string {
	if x != nil && x.Number != nil {
		return *x.Number
	}
	return ""
}

func (x *CostSpec) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *CostSpec) GetDate() *Date {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *CostSpec) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

type MetaValue struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Value:
	//
	//	*MetaValue_Text
	//	*MetaValue_Account
	//	*MetaValue_Currency
	//	*MetaValue_Tag
	//	*MetaValue_Link
	//	*MetaValue_Flag
	//	*MetaValue_Date
	//	*MetaValue_Boolean
	//	*MetaValue_Integer
	//	*MetaValue_Number
	//	*MetaValue_Amount
	Value         isMetaValue_Value `protobuf_oneof:"value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MetaValue) Reset() {
	*x = MetaValue{}
	mi := &file_beanledger_v1_data_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MetaValue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MetaValue) ProtoMessage() {}

func (x *MetaValue) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MetaValue.ProtoReflect.Descriptor instead.
func (*MetaValue) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{4}
}

func (x *MetaValue) GetValue() isMetaValue_Value {
	if x != nil {
		return x.Value
	}
	return nil
}

func (x *MetaValue) GetText() string {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Text); ok {
			return x.Text
		}
	}
	return ""
}

func (x *MetaValue) GetAccount() string {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Account); ok {
			return x.Account
		}
	}
	return ""
}

func (x *MetaValue) GetCurrency() string {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Currency); ok {
			return x.Currency
		}
	}
	return ""
}

func (x *MetaValue) GetTag() string {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Tag); ok {
			return x.Tag
		}
	}
	return ""
}

func (x *MetaValue) GetLink() string {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Link); ok {
			return x.Link
		}
	}
	return ""
}

func (x *MetaValue) GetFlag() string {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Flag); ok {
			return x.Flag
		}
	}
	return ""
}

func (x *MetaValue) GetDate() *Date {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Date); ok {
			return x.Date
		}
	}
	return nil
}

func (x *MetaValue) GetBoolean() bool {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Boolean); ok {
			return x.Boolean
		}
	}
	return false
}

func (x *MetaValue) GetInteger() int64 {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Integer); ok {
			return x.Integer
		}
	}
	return 0
}

func (x *MetaValue) GetNumber() string {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Number); ok {
			return x.Number
		}
	}
	return ""
}

func (x *MetaValue) GetAmount() *Amount {
	if x != nil {
		if x, ok := x.Value.(*MetaValue_Amount); ok {
			return x.Amount
		}
	}
	return nil
}

type isMetaValue_Value interface {
	isMetaValue_Value()
}

type MetaValue_Text struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3,oneof"`
}

type MetaValue_Account struct {
	Account string `protobuf:"bytes,2,opt,name=account,proto3,oneof"`
}

type MetaValue_Currency struct {
	Currency string `protobuf:"bytes,3,opt,name=currency,proto3,oneof"`
}

type MetaValue_Tag struct {
	Tag string `protobuf:"bytes,4,opt,name=tag,proto3,oneof"`
}

type MetaValue_Link struct {
	Link string `protobuf:"bytes,5,opt,name=link,proto3,oneof"`
}

type MetaValue_Flag struct {
	Flag string `protobuf:"bytes,6,opt,name=flag,proto3,oneof"`
}

type MetaValue_Date struct {
	Date *Date `protobuf:"bytes,7,opt,name=date,proto3,oneof"`
}

type MetaValue_Boolean struct {
	Boolean bool `protobuf:"varint,8,opt,name=boolean,proto3,oneof"`
}

type MetaValue_Integer struct {
	Integer int64 `protobuf:"varint,9,opt,name=integer,proto3,oneof"`
}

type MetaValue_Number struct {
	Number string `protobuf:"bytes,10,opt,name=number,proto3,oneof"`
}

type MetaValue_Amount struct {
	Amount *Amount `protobuf:"bytes,11,opt,name=amount,proto3,oneof"`
}

func (*MetaValue_Text) isMetaValue_Value() {}

func (*MetaValue_Account) isMetaValue_Value() {}

func (*MetaValue_Currency) isMetaValue_Value() {}

func (*MetaValue_Tag) isMetaValue_Value() {}

func (*MetaValue_Link) isMetaValue_Value() {}

func (*MetaValue_Flag) isMetaValue_Value() {}

func (*MetaValue_Date) isMetaValue_Value() {}

func (*MetaValue_Boolean) isMetaValue_Value() {}

func (*MetaValue_Integer) isMetaValue_Value() {}

func (*MetaValue_Number) isMetaValue_Value() {}

func (*MetaValue_Amount) isMetaValue_Value() {}

type KV struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value         *MetaValue             `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KV) Reset() {
	*x = KV{}
	mi := &file_beanledger_v1_data_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KV) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KV) ProtoMessage() {}

func (x *KV) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KV.ProtoReflect.Descriptor instead.
func (*KV) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{5}
}

func (x *KV) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *KV) GetValue() *MetaValue {
	if x != nil {
		return x.Value
	}
	return nil
}

type Meta struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kv            []*KV                  `protobuf:"bytes,1,rep,name=kv,proto3" json:"kv,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Meta) Reset() {
	*x = Meta{}
	mi := &file_beanledger_v1_data_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Meta) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Meta) ProtoMessage() {}

func (x *Meta) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Meta.ProtoReflect.Descriptor instead.
func (*Meta) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{6}
}

func (x *Meta) GetKv() []*KV {
	if x != nil {
		return x.Kv
	}
	return nil
}

type Posting struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Meta          *Meta                  `protobuf:"bytes,1,opt,name=meta,proto3" json:"meta,omitempty"`
	Date          *Date                  `protobuf:"bytes,2,opt,name=date,proto3,oneof" json:"date,omitempty"`
	Flag          string                 `protobuf:"bytes,3,opt,name=flag,proto3" json:"flag,omitempty"`
	Account       string                 `protobuf:"bytes,4,opt,name=account,proto3" json:"account,omitempty"`
	Units         *Amount                `protobuf:"bytes,5,opt,name=units,proto3" json:"units,omitempty"`
	Cost          *Cost                  `protobuf:"bytes,6,opt,name=cost,proto3" json:"cost,omitempty"`
	Price         *Amount                `protobuf:"bytes,7,opt,name=price,proto3" json:"price,omitempty"`
	CostSpec      *CostSpec              `protobuf:"bytes,8,opt,name=cost_spec,json=costSpec,proto3" json:"cost_spec,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Posting) Reset() {
	*x = Posting{}
	mi := &file_beanledger_v1_data_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Posting) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Posting) ProtoMessage() {}

func (x *Posting) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Posting.ProtoReflect.Descriptor instead.
func (*Posting) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{7}
}

func (x *Posting) GetMeta() *Meta {
	if x != nil {
		return x.Meta
	}
	return nil
}

func (x *Posting) GetDate() *Date {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *Posting) GetFlag() string {
	if x != nil {
		return x.Flag
	}
	return ""
}

func (x *Posting) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *Posting) GetUnits() *Amount {
	if x != nil {
		return x.Units
	}
	return nil
}

func (x *Posting) GetCost() *Cost {
	if x != nil {
		return x.Cost
	}
	return nil
}

func (x *Posting) GetPrice() *Amount {
	if x != nil {
		return x.Price
	}
	return nil
}

func (x *Posting) GetCostSpec() *CostSpec {
	if x != nil {
		return x.CostSpec
	}
	return nil
}

type Transaction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Flag          string                 `protobuf:"bytes,1,opt,name=flag,proto3" json:"flag,omitempty"`
	Payee         string                 `protobuf:"bytes,2,opt,name=payee,proto3" json:"payee,omitempty"`
	Narration     string                 `protobuf:"bytes,3,opt,name=narration,proto3" json:"narration,omitempty"`
	Tags          []string               `protobuf:"bytes,4,rep,name=tags,proto3" json:"tags,omitempty"`
	Links         []string               `protobuf:"bytes,5,rep,name=links,proto3" json:"links,omitempty"`
	Postings      []*Posting             `protobuf:"bytes,6,rep,name=postings,proto3" json:"postings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_beanledger_v1_data_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{8}
}

func (x *Transaction) GetFlag() string {
	if x != nil {
		return x.Flag
	}
	return ""
}

func (x *Transaction) GetPayee() string {
	if x != nil {
		return x.Payee
	}
	return ""
}

func (x *Transaction) GetNarration() string {
	if x != nil {
		return x.Narration
	}
	return ""
}

func (x *Transaction) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *Transaction) GetLinks() []string {
	if x != nil {
		return x.Links
	}
	return nil
}

func (x *Transaction) GetPostings() []*Posting {
	if x != nil {
		return x.Postings
	}
	return nil
}

type Open struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Currencies    []string               `protobuf:"bytes,2,rep,name=currencies,proto3" json:"currencies,omitempty"`
	Booking       Booking                `protobuf:"varint,3,opt,name=booking,proto3,enum=beanledger.v1.Booking" json:"booking,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Open) Reset() {
	*x = Open{}
	mi := &file_beanledger_v1_data_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Open) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Open) ProtoMessage() {}

func (x *Open) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Open.ProtoReflect.Descriptor instead.
func (*Open) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{9}
}

func (x *Open) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *Open) GetCurrencies() []string {
	if x != nil {
		return x.Currencies
	}
	return nil
}

func (x *Open) GetBooking() Booking {
	if x != nil {
		return x.Booking
	}
	return Booking_BOOKING_UNKNOWN
}

type Close struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Close) Reset() {
	*x = Close{}
	mi := &file_beanledger_v1_data_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Close) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Close) ProtoMessage() {}

func (x *Close) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Close.ProtoReflect.Descriptor instead.
func (*Close) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{10}
}

func (x *Close) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

type Commodity struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Currency      string                 `protobuf:"bytes,1,opt,name=currency,proto3" json:"currency,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Commodity) Reset() {
	*x = Commodity{}
	mi := &file_beanledger_v1_data_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Commodity) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Commodity) ProtoMessage() {}

func (x *Commodity) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Commodity.ProtoReflect.Descriptor instead.
func (*Commodity) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{11}
}

func (x *Commodity) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

type Pad struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	SourceAccount string                 `protobuf:"bytes,2,opt,name=source_account,json=sourceAccount,proto3" json:"source_account,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Pad) Reset() {
	*x = Pad{}
	mi := &file_beanledger_v1_data_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Pad) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Pad) ProtoMessage() {}

func (x *Pad) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Pad.ProtoReflect.Descriptor instead.
func (*Pad) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{12}
}

func (x *Pad) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *Pad) GetSourceAccount() string {
	if x != nil {
		return x.SourceAccount
	}
	return ""
}

type Balance struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Amount        *Amount                `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Tolerance     *string                `protobuf:"bytes,3,opt,name=tolerance,proto3,oneof" json:"tolerance,omitempty"`
	DiffAmount    *Amount                `protobuf:"bytes,4,opt,name=diff_amount,json=diffAmount,proto3" json:"diff_amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Balance) Reset() {
	*x = Balance{}
	mi := &file_beanledger_v1_data_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Balance) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Balance) ProtoMessage() {}

func (x *Balance) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Balance.ProtoReflect.Descriptor instead.
func (*Balance) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{13}
}

func (x *Balance) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *Balance) GetAmount() *Amount {
	if x != nil {
		return x.Amount
	}
	return nil
}

func (x *Balance) GetTolerance() string {
	if x != nil && x.Tolerance != nil {
		return *x.Tolerance
	}
	return ""
}

func (x *Balance) GetDiffAmount() *Amount {
	if x != nil {
		return x.DiffAmount
	}
	return nil
}

type Note struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Comment       string                 `protobuf:"bytes,2,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Note) Reset() {
	*x = Note{}
	mi := &file_beanledger_v1_data_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Note) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Note) ProtoMessage() {}

func (x *Note) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Note.ProtoReflect.Descriptor instead.
func (*Note) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{14}
}

func (x *Note) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *Note) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type Event struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Event) Reset() {
	*x = Event{}
	mi := &file_beanledger_v1_data_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Event) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Event) ProtoMessage() {}

func (x *Event) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Event.ProtoReflect.Descriptor instead.
func (*Event) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{15}
}

func (x *Event) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Event) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type Query struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	QueryString   string                 `protobuf:"bytes,2,opt,name=query_string,json=queryString,proto3" json:"query_string,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Query) Reset() {
	*x = Query{}
	mi := &file_beanledger_v1_data_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Query) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Query) ProtoMessage() {}

func (x *Query) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Query.ProtoReflect.Descriptor instead.
func (*Query) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{16}
}

func (x *Query) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Query) GetQueryString() string {
	if x != nil {
		return x.QueryString
	}
	return ""
}

type Price struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Currency      string                 `protobuf:"bytes,1,opt,name=currency,proto3" json:"currency,omitempty"`
	Amount        *Amount                `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Price) Reset() {
	*x = Price{}
	mi := &file_beanledger_v1_data_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Price) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Price) ProtoMessage() {}

func (x *Price) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Price.ProtoReflect.Descriptor instead.
func (*Price) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{17}
}

func (x *Price) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Price) GetAmount() *Amount {
	if x != nil {
		return x.Amount
	}
	return nil
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Tags          []string               `protobuf:"bytes,3,rep,name=tags,proto3" json:"tags,omitempty"`
	Links         []string               `protobuf:"bytes,4,rep,name=links,proto3" json:"links,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_beanledger_v1_data_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{18}
}

func (x *Document) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *Document) GetLinks() []string {
	if x != nil {
		return x.Links
	}
	return nil
}

type Custom struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Values        []*MetaValue           `protobuf:"bytes,2,rep,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Custom) Reset() {
	*x = Custom{}
	mi := &file_beanledger_v1_data_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Custom) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Custom) ProtoMessage() {}

func (x *Custom) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Custom.ProtoReflect.Descriptor instead.
func (*Custom) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{19}
}

func (x *Custom) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Custom) GetValues() []*MetaValue {
	if x != nil {
		return x.Values
	}
	return nil
}

type Directive struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Date  *Date                  `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	Meta  *Meta                  `protobuf:"bytes,2,opt,name=meta,proto3" json:"meta,omitempty"`
	// Types that are valid to be assigned to Body:
	//
	//	*Directive_Transaction
	//	*Directive_Price
	//	*Directive_Balance
	//	*Directive_Open
	//	*Directive_Close
	//	*Directive_Commodity
	//	*Directive_Pad
	//	*Directive_Document
	//	*Directive_Note
	//	*Directive_Event
	//	*Directive_Query
	//	*Directive_Custom
	Body          isDirective_Body `protobuf_oneof:"body"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Directive) Reset() {
	*x = Directive{}
	mi := &file_beanledger_v1_data_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Directive) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Directive) ProtoMessage() {}

func (x *Directive) ProtoReflect() protoreflect.Message {
	mi := &file_beanledger_v1_data_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Directive.ProtoReflect.Descriptor instead.
func (*Directive) Descriptor() ([]byte, []int) {
	return file_beanledger_v1_data_proto_rawDescGZIP(), []int{20}
}

func (x *Directive) GetDate() *Date {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *Directive) GetMeta() *Meta {
	if x != nil {
		return x.Meta
	}
	return nil
}

func (x *Directive) GetBody() isDirective_Body {
	if x != nil {
		return x.Body
	}
	return nil
}

func (x *Directive) GetTransaction() *Transaction {
	if x != nil {
		if x, ok := x.Body.(*Directive_Transaction); ok {
			return x.Transaction
		}
	}
	return nil
}

func (x *Directive) GetPrice() *Price {
	if x != nil {
		if x, ok := x.Body.(*Directive_Price); ok {
			return x.Price
		}
	}
	return nil
}

func (x *Directive) GetBalance() *Balance {
	if x != nil {
		if x, ok := x.Body.(*Directive_Balance); ok {
			return x.Balance
		}
	}
	return nil
}

func (x *Directive) GetOpen() *Open {
	if x != nil {
		if x, ok := x.Body.(*Directive_Open); ok {
			return x.Open
		}
	}
	return nil
}

func (x *Directive) GetClose() *Close {
	if x != nil {
		if x, ok := x.Body.(*Directive_Close); ok {
			return x.Close
		}
	}
	return nil
}

func (x *Directive) GetCommodity() *Commodity {
	if x != nil {
		if x, ok := x.Body.(*Directive_Commodity); ok {
			return x.Commodity
		}
	}
	return nil
}

func (x *Directive) GetPad() *Pad {
	if x != nil {
		if x, ok := x.Body.(*Directive_Pad); ok {
			return x.Pad
		}
	}
	return nil
}

func (x *Directive) GetDocument() *Document {
	if x != nil {
		if x, ok := x.Body.(*Directive_Document); ok {
			return x.Document
		}
	}
	return nil
}

func (x *Directive) GetNote() *Note {
	if x != nil {
		if x, ok := x.Body.(*Directive_Note); ok {
			return x.Note
		}
	}
	return nil
}

func (x *Directive) GetEvent() *Event {
	if x != nil {
		if x, ok := x.Body.(*Directive_Event); ok {
			return x.Event
		}
	}
	return nil
}

func (x *Directive) GetQuery() *Query {
	if x != nil {
		if x, ok := x.Body.(*Directive_Query); ok {
			return x.Query
		}
	}
	return nil
}

func (x *Directive) GetCustom() *Custom {
	if x != nil {
		if x, ok := x.Body.(*Directive_Custom); ok {
			return x.Custom
		}
	}
	return nil
}

type isDirective_Body interface {
	isDirective_Body()
}

type Directive_Transaction struct {
	Transaction *Transaction `protobuf:"bytes,3,opt,name=transaction,proto3,oneof"`
}

type Directive_Price struct {
	Price *Price `protobuf:"bytes,4,opt,name=price,proto3,oneof"`
}

type Directive_Balance struct {
	Balance *Balance `protobuf:"bytes,5,opt,name=balance,proto3,oneof"`
}

type Directive_Open struct {
	Open *Open `protobuf:"bytes,6,opt,name=open,proto3,oneof"`
}

type Directive_Close struct {
	Close *Close `protobuf:"bytes,7,opt,name=close,proto3,oneof"`
}

type Directive_Commodity struct {
	Commodity *Commodity `protobuf:"bytes,8,opt,name=commodity,proto3,oneof"`
}

type Directive_Pad struct {
	Pad *Pad `protobuf:"bytes,9,opt,name=pad,proto3,oneof"`
}

type Directive_Document struct {
	Document *Document `protobuf:"bytes,10,opt,name=document,proto3,oneof"`
}

type Directive_Note struct {
	Note *Note `protobuf:"bytes,11,opt,name=note,proto3,oneof"`
}

type Directive_Event struct {
	Event *Event `protobuf:"bytes,12,opt,name=event,proto3,oneof"`
}

type Directive_Query struct {
	Query *Query `protobuf:"bytes,13,opt,name=query,proto3,oneof"`
}

type Directive_Custom struct {
	Custom *Custom `protobuf:"bytes,14,opt,name=custom,proto3,oneof"`
}

func (*Directive_Transaction) isDirective_Body() {}

func (*Directive_Price) isDirective_Body() {}

func (*Directive_Balance) isDirective_Body() {}

func (*Directive_Open) isDirective_Body() {}

func (*Directive_Close) isDirective_Body() {}

func (*Directive_Commodity) isDirective_Body() {}

func (*Directive_Pad) isDirective_Body() {}

func (*Directive_Document) isDirective_Body() {}

func (*Directive_Note) isDirective_Body() {}

func (*Directive_Event) isDirective_Body() {}

func (*Directive_Query) isDirective_Body() {}

func (*Directive_Custom) isDirective_Body() {}

var File_beanledger_v1_data_proto protoreflect.FileDescriptor

const file_beanledger_v1_data_proto_rawDesc = "" +
	"\n" +
	"\x18beanledger/v1/data.proto\x12\rbeanledger.v1\"B\n" +
	"\x04Date\x12\x12\n" +
	"\x04year\x18\x01 \x01(\x05R\x04year\x12\x14\n" +
	"\x05month\x18\x02 \x01(\x05R\x05month\x12\x10\n" +
	"\x03day\x18\x03 \x01(\x05R\x03day\"<\n" +
	"\x06Amount\x12\x16\n" +
	"\x06number\x18\x01 \x01(\tR\x06number\x12\x1a\n" +
	"\bcurrency\x18\x02 \x01(\tR\bcurrency\"y\n" +
	"\x04Cost\x12\x16\n" +
	"\x06number\x18\x01 \x01(\tR\x06number\x12\x1a\n" +
	"\bcurrency\x18\x02 \x01(\tR\bcurrency\x12'\n" +
	"\x04date\x18\x03 \x01(\v2\x13.beanledger.v1.DateR\x04date\x12\x14\n" +
	"\x05label\x18\x04 \x01(\tR\x05label\"\x9b\x01\n" +
	"\bCostSpec\x12\x1b\n" +
	"\x06number\x18\x01 \x01(\tH\x00R\x06number\x88\x01\x01\x12\x1a\n" +
	"\bcurrency\x18\x02 \x01(\tR\bcurrency\x12,\n" +
	"\x04date\x18\x03 \x01(\v2\x13.beanledger.v1.DateH\x01R\x04date\x88\x01\x01\x12\x14\n" +
	"\x05label\x18\x04 \x01(\tR\x05labelB\t\n" +
	"\a_numberB\a\n" +
	"\x05_date\"\xd2\x02\n" +
	"\tMetaValue\x12\x14\n" +
	"\x04text\x18\x01 \x01(\tH\x00R\x04text\x12\x1a\n" +
	"\aaccount\x18\x02 \x01(\tH\x00R\aaccount\x12\x1c\n" +
	"\bcurrency\x18\x03 \x01(\tH\x00R\bcurrency\x12\x12\n" +
	"\x03tag\x18\x04 \x01(\tH\x00R\x03tag\x12\x14\n" +
	"\x04link\x18\x05 \x01(\tH\x00R\x04link\x12\x14\n" +
	"\x04flag\x18\x06 \x01(\tH\x00R\x04flag\x12)\n" +
	"\x04date\x18\a \x01(\v2\x13.beanledger.v1.DateH\x00R\x04date\x12\x1a\n" +
	"\aboolean\x18\b \x01(\bH\x00R\aboolean\x12\x1a\n" +
	"\ainteger\x18\t \x01(\x03H\x00R\ainteger\x12\x18\n" +
	"\x06number\x18\n" +
	" \x01(\tH\x00R\x06number\x12/\n" +
	"\x06amount\x18\v \x01(\v2\x15.beanledger.v1.AmountH\x00R\x06amountB\a\n" +
	"\x05value\"F\n" +
	"\x02KV\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12.\n" +
	"\x05value\x18\x02 \x01(\v2\x18.beanledger.v1.MetaValueR\x05value\")\n" +
	"\x04Meta\x12!\n" +
	"\x02kv\x18\x01 \x03(\v2\x11.beanledger.v1.KVR\x02kv\"\xd0\x02\n" +
	"\aPosting\x12'\n" +
	"\x04meta\x18\x01 \x01(\v2\x13.beanledger.v1.MetaR\x04meta\x12,\n" +
	"\x04date\x18\x02 \x01(\v2\x13.beanledger.v1.DateH\x00R\x04date\x88\x01\x01\x12\x12\n" +
	"\x04flag\x18\x03 \x01(\tR\x04flag\x12\x18\n" +
	"\aaccount\x18\x04 \x01(\tR\aaccount\x12+\n" +
	"\x05units\x18\x05 \x01(\v2\x15.beanledger.v1.AmountR\x05units\x12'\n" +
	"\x04cost\x18\x06 \x01(\v2\x13.beanledger.v1.CostR\x04cost\x12+\n" +
	"\x05price\x18\a \x01(\v2\x15.beanledger.v1.AmountR\x05price\x124\n" +
	"\tcost_spec\x18\b \x01(\v2\x17.beanledger.v1.CostSpecR\bcostSpecB\a\n" +
	"\x05_date\"\xb3\x01\n" +
	"\vTransaction\x12\x12\n" +
	"\x04flag\x18\x01 \x01(\tR\x04flag\x12\x14\n" +
	"\x05payee\x18\x02 \x01(\tR\x05payee\x12\x1c\n" +
	"\tnarration\x18\x03 \x01(\tR\tnarration\x12\x12\n" +
	"\x04tags\x18\x04 \x03(\tR\x04tags\x12\x14\n" +
	"\x05links\x18\x05 \x03(\tR\x05links\x122\n" +
	"\bpostings\x18\x06 \x03(\v2\x16.beanledger.v1.PostingR\bpostings\"r\n" +
	"\x04Open\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\x12\x1e\n" +
	"\n" +
	"currencies\x18\x02 \x03(\tR\n" +
	"currencies\x120\n" +
	"\abooking\x18\x03 \x01(\x0e2\x16.beanledger.v1.BookingR\abooking\"!\n" +
	"\x05Close\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\"'\n" +
	"\tCommodity\x12\x1a\n" +
	"\bcurrency\x18\x01 \x01(\tR\bcurrency\"F\n" +
	"\x03Pad\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\x12%\n" +
	"\x0esource_account\x18\x02 \x01(\tR\rsourceAccount\"\xbb\x01\n" +
	"\aBalance\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\x12-\n" +
	"\x06amount\x18\x02 \x01(\v2\x15.beanledger.v1.AmountR\x06amount\x12!\n" +
	"\ttolerance\x18\x03 \x01(\tH\x00R\ttolerance\x88\x01\x01\x126\n" +
	"\vdiff_amount\x18\x04 \x01(\v2\x15.beanledger.v1.AmountR\n" +
	"diffAmountB\f\n" +
	"\n" +
	"_tolerance\":\n" +
	"\x04Note\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\x12\x18\n" +
	"\acomment\x18\x02 \x01(\tR\acomment\"=\n" +
	"\x05Event\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\">\n" +
	"\x05Query\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12!\n" +
	"\fquery_string\x18\x02 \x01(\tR\vqueryString\"R\n" +
	"\x05Price\x12\x1a\n" +
	"\bcurrency\x18\x01 \x01(\tR\bcurrency\x12-\n" +
	"\x06amount\x18\x02 \x01(\v2\x15.beanledger.v1.AmountR\x06amount\"j\n" +
	"\bDocument\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x12\n" +
	"\x04tags\x18\x03 \x03(\tR\x04tags\x12\x14\n" +
	"\x05links\x18\x04 \x03(\tR\x05links\"N\n" +
	"\x06Custom\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x120\n" +
	"\x06values\x18\x02 \x03(\v2\x18.beanledger.v1.MetaValueR\x06values\"\xb1\x05\n" +
	"\tDirective\x12'\n" +
	"\x04date\x18\x01 \x01(\v2\x13.beanledger.v1.DateR\x04date\x12'\n" +
	"\x04meta\x18\x02 \x01(\v2\x13.beanledger.v1.MetaR\x04meta\x12>\n" +
	"\vtransaction\x18\x03 \x01(\v2\x1a.beanledger.v1.TransactionH\x00R\vtransaction\x12,\n" +
	"\x05price\x18\x04 \x01(\v2\x14.beanledger.v1.PriceH\x00R\x05price\x122\n" +
	"\abalance\x18\x05 \x01(\v2\x16.beanledger.v1.BalanceH\x00R\abalance\x12)\n" +
	"\x04open\x18\x06 \x01(\v2\x13.beanledger.v1.OpenH\x00R\x04open\x12,\n" +
	"\x05close\x18\a \x01(\v2\x14.beanledger.v1.CloseH\x00R\x05close\x128\n" +
	"\tcommodity\x18\b \x01(\v2\x18.beanledger.v1.CommodityH\x00R\tcommodity\x12&\n" +
	"\x03pad\x18\t \x01(\v2\x12.beanledger.v1.PadH\x00R\x03pad\x125\n" +
	"\bdocument\x18\n" +
	" \x01(\v2\x17.beanledger.v1.DocumentH\x00R\bdocument\x12)\n" +
	"\x04note\x18\v \x01(\v2\x13.beanledger.v1.NoteH\x00R\x04note\x12,\n" +
	"\x05event\x18\f \x01(\v2\x14.beanledger.v1.EventH\x00R\x05event\x12,\n" +
	"\x05query\x18\r \x01(\v2\x14.beanledger.v1.QueryH\x00R\x05query\x12/\n" +
	"\x06custom\x18\x0e \x01(\v2\x15.beanledger.v1.CustomH\x00R\x06customB\x06\n" +
	"\x04body*}\n" +
	"\aBooking\x12\x13\n" +
	"\x0fBOOKING_UNKNOWN\x10\x00\x12\x12\n" +
	"\x0eBOOKING_STRICT\x10\x01\x12\x10\n" +
	"\fBOOKING_NONE\x10\x02\x12\x13\n" +
	"\x0fBOOKING_AVERAGE\x10\x03\x12\x10\n" +
	"\fBOOKING_FIFO\x10\x04\x12\x10\n" +
	"\fBOOKING_LIFO\x10\x05B.Z,BeanLedger/gen/go/beanledger/v1;beanledgerv1b\x06proto3"

var (
	file_beanledger_v1_data_proto_rawDescOnce sync.Once
	file_beanledger_v1_data_proto_rawDescData []byte
)

func file_beanledger_v1_data_proto_rawDescGZIP() []byte {
	file_beanledger_v1_data_proto_rawDescOnce.Do(func() {
		file_beanledger_v1_data_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_beanledger_v1_data_proto_rawDesc), len(file_beanledger_v1_data_proto_rawDesc)))
	})
	return file_beanledger_v1_data_proto_rawDescData
}

var file_beanledger_v1_data_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_beanledger_v1_data_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_beanledger_v1_data_proto_goTypes = []any{
	(Booking)(0),        // 0: beanledger.v1.Booking
	(*Date)(nil),        // 1: beanledger.v1.Date
	(*Amount)(nil),      // 2: beanledger.v1.Amount
	(*Cost)(nil),        // 3: beanledger.v1.Cost
	(*CostSpec)(nil),    // 4: beanledger.v1.CostSpec
	(*MetaValue)(nil),   // 5: beanledger.v1.MetaValue
	(*KV)(nil),          // 6: beanledger.v1.KV
	(*Meta)(nil),        // 7: beanledger.v1.Meta
	(*Posting)(nil),     // 8: beanledger.v1.Posting
	(*Transaction)(nil), // 9: beanledger.v1.Transaction
	(*Open)(nil),        // 10: beanledger.v1.Open
	(*Close)(nil),       // 11: beanledger.v1.Close
	(*Commodity)(nil),   // 12: beanledger.v1.Commodity
	(*Pad)(nil),         // 13: beanledger.v1.Pad
	(*Balance)(nil),     // 14: beanledger.v1.Balance
	(*Note)(nil),        // 15: beanledger.v1.Note
	(*Event)(nil),       // 16: beanledger.v1.Event
	(*Query)(nil),       // 17: beanledger.v1.Query
	(*Price)(nil),       // 18: beanledger.v1.Price
	(*Document)(nil),    // 19: beanledger.v1.Document
	(*Custom)(nil),      // 20: beanledger.v1.Custom
	(*Directive)(nil),   // 21: beanledger.v1.Directive
}
var file_beanledger_v1_data_proto_depIdxs = []int32{
	1,  // 0: beanledger.v1.Cost.date:type_name -> beanledger.v1.Date
	1,  // 1: beanledger.v1.CostSpec.date:type_name -> beanledger.v1.Date
	1,  // 2: beanledger.v1.MetaValue.date:type_name -> beanledger.v1.Date
	2,  // 3: beanledger.v1.MetaValue.amount:type_name -> beanledger.v1.Amount
	5,  // 4: beanledger.v1.KV.value:type_name -> beanledger.v1.MetaValue
	6,  // 5: beanledger.v1.Meta.kv:type_name -> beanledger.v1.KV
	7,  // 6: beanledger.v1.Posting.meta:type_name -> beanledger.v1.Meta
	1,  // 7: beanledger.v1.Posting.date:type_name -> beanledger.v1.Date
	2,  // 8: beanledger.v1.Posting.units:type_name -> beanledger.v1.Amount
	3,  // 9: beanledger.v1.Posting.cost:type_name -> beanledger.v1.Cost
	2,  // 10: beanledger.v1.Posting.price:type_name -> beanledger.v1.Amount
	4,  // 11: beanledger.v1.Posting.cost_spec:type_name -> beanledger.v1.CostSpec
	8,  // 12: beanledger.v1.Transaction.postings:type_name -> beanledger.v1.Posting
	0,  // 13: beanledger.v1.Open.booking:type_name -> beanledger.v1.Booking
	2,  // 14: beanledger.v1.Balance.amount:type_name -> beanledger.v1.Amount
	2,  // 15: beanledger.v1.Balance.diff_amount:type_name -> beanledger.v1.Amount
	2,  // 16: beanledger.v1.Price.amount:type_name -> beanledger.v1.Amount
	5,  // 17: beanledger.v1.Custom.values:type_name -> beanledger.v1.MetaValue
	1,  // 18: beanledger.v1.Directive.date:type_name -> beanledger.v1.Date
	7,  // 19: beanledger.v1.Directive.meta:type_name -> beanledger.v1.Meta
	9,  // 20: beanledger.v1.Directive.transaction:type_name -> beanledger.v1.Transaction
	18, // 21: beanledger.v1.Directive.price:type_name -> beanledger.v1.Price
	14, // 22: beanledger.v1.Directive.balance:type_name -> beanledger.v1.Balance
	10, // 23: beanledger.v1.Directive.open:type_name -> beanledger.v1.Open
	11, // 24: beanledger.v1.Directive.close:type_name -> beanledger.v1.Close
	12, // 25: beanledger.v1.Directive.commodity:type_name -> beanledger.v1.Commodity
	13, // 26: beanledger.v1.Directive.pad:type_name -> beanledger.v1.Pad
	19, // 27: beanledger.v1.Directive.document:type_name -> beanledger.v1.Document
	15, // 28: beanledger.v1.Directive.note:type_name -> beanledger.v1.Note
	16, // 29: beanledger.v1.Directive.event:type_name -> beanledger.v1.Event
	17, // 30: beanledger.v1.Directive.query:type_name -> beanledger.v1.Query
	20, // 31: beanledger.v1.Directive.custom:type_name -> beanledger.v1.Custom
	32, // [32:32] is the sub-list for method output_type
	32, // [32:32] is the sub-list for method input_type
	32, // [32:32] is the sub-list for extension type_name
	32, // [32:32] is the sub-list for extension extendee
	0,  // [0:32] is the sub-list for field type_name
}

func init() { file_beanledger_v1_data_proto_init() }
func file_beanledger_v1_data_proto_init() {
	if File_beanledger_v1_data_proto != nil {
		return
	}
	file_beanledger_v1_data_proto_msgTypes[3].OneofWrappers = []any{}
	file_beanledger_v1_data_proto_msgTypes[4].OneofWrappers = []any{
		(*MetaValue_Text)(nil),
		(*MetaValue_Account)(nil),
		(*MetaValue_Currency)(nil),
		(*MetaValue_Tag)(nil),
		(*MetaValue_Link)(nil),
		(*MetaValue_Flag)(nil),
		(*MetaValue_Date)(nil),
		(*MetaValue_Boolean)(nil),
		(*MetaValue_Integer)(nil),
		(*MetaValue_Number)(nil),
		(*MetaValue_Amount)(nil),
	}
	file_beanledger_v1_data_proto_msgTypes[7].OneofWrappers = []any{}
	file_beanledger_v1_data_proto_msgTypes[13].OneofWrappers = []any{}
	file_beanledger_v1_data_proto_msgTypes[20].OneofWrappers = []any{
		(*Directive_Transaction)(nil),
		(*Directive_Price)(nil),
		(*Directive_Balance)(nil),
		(*Directive_Open)(nil),
		(*Directive_Close)(nil),
		(*Directive_Commodity)(nil),
		(*Directive_Pad)(nil),
		(*Directive_Document)(nil),
		(*Directive_Note)(nil),
		(*Directive_Event)(nil),
		(*Directive_Query)(nil),
		(*Directive_Custom)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_beanledger_v1_data_proto_rawDesc), len(file_beanledger_v1_data_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_beanledger_v1_data_proto_goTypes,
		DependencyIndexes: file_beanledger_v1_data_proto_depIdxs,
		EnumInfos:         file_beanledger_v1_data_proto_enumTypes,
		MessageInfos:      file_beanledger_v1_data_proto_msgTypes,
	}.Build()
	File_beanledger_v1_data_proto = out.File
	file_beanledger_v1_data_proto_goTypes = nil
	file_beanledger_v1_data_proto_depIdxs = nil
}
