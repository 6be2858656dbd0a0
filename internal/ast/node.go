package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (f *File) NodePos() Position    { return f.Pos }
func (f *File) NodeEndPos() Position { return f.EndPos }
func (*File) NodeType() NodeType     { return FILE }

func (i *Init) NodePos() Position    { return i.Pos }
func (i *Init) NodeEndPos() Position { return i.EndPos }
func (*Init) NodeType() NodeType     { return INIT }

func (a *Assign) NodePos() Position    { return a.Pos }
func (a *Assign) NodeEndPos() Position { return a.EndPos }
func (*Assign) NodeType() NodeType     { return ASSIGN }

func (i *If) NodePos() Position    { return i.Pos }
func (i *If) NodeEndPos() Position { return i.EndPos }
func (*If) NodeType() NodeType     { return IF }

func (f *Func) NodePos() Position    { return f.Pos }
func (f *Func) NodeEndPos() Position { return f.EndPos }
func (*Func) NodeType() NodeType     { return FUNC }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (t *Tuple) NodePos() Position    { return t.Pos }
func (t *Tuple) NodeEndPos() Position { return t.EndPos }
func (*Tuple) NodeType() NodeType     { return TUPLE }

func (c *Chain) NodePos() Position    { return c.Pos }
func (c *Chain) NodeEndPos() Position { return c.EndPos }
func (*Chain) NodeType() NodeType     { return CHAIN }

func (s *StringLit) NodePos() Position    { return s.Pos }
func (s *StringLit) NodeEndPos() Position { return s.EndPos }
func (*StringLit) NodeType() NodeType     { return STRING }

func (n *NumberLit) NodePos() Position    { return n.Pos }
func (n *NumberLit) NodeEndPos() Position { return n.EndPos }
func (*NumberLit) NodeType() NodeType     { return NUMBER }

func (v *Variable) NodePos() Position    { return v.Pos }
func (v *Variable) NodeEndPos() Position { return v.EndPos }
func (*Variable) NodeType() NodeType     { return VARIABLE }
