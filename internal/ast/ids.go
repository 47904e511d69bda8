package ast

type (
	// main entities
	DocID  uint32
	NodeID uint32
	StmtID uint32
	TypeID uint32
	// sub-entities
	PayloadID   uint32
	ParamID     uint32
	TypeFieldID uint32
	ContractID  uint32
)

const (
	NoDocID       DocID       = 0
	NoNodeID      NodeID      = 0
	NoStmtID      StmtID      = 0
	NoTypeID      TypeID      = 0
	NoPayloadID   PayloadID   = 0
	NoParamID     ParamID     = 0
	NoTypeFieldID TypeFieldID = 0
	NoContractID  ContractID  = 0
)

func (id DocID) IsValid() bool       { return id != NoDocID }
func (id NodeID) IsValid() bool      { return id != NoNodeID }
func (id StmtID) IsValid() bool      { return id != NoStmtID }
func (id TypeID) IsValid() bool      { return id != NoTypeID }
func (id PayloadID) IsValid() bool   { return id != NoPayloadID }
func (id ParamID) IsValid() bool     { return id != NoParamID }
func (id TypeFieldID) IsValid() bool { return id != NoTypeFieldID }
func (id ContractID) IsValid() bool  { return id != NoContractID }
