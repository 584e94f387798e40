package ast

type (
	TypeID    uint32
	ExprID    uint32
	PayloadID uint32
)

const (
	NoTypeID    TypeID    = 0
	NoExprID    ExprID    = 0
	NoPayloadID PayloadID = 0
)

func (id TypeID) IsValid() bool    { return id != NoTypeID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
