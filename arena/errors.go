package arena

import "errors"

// ErrDangling 视图指向已释放的块
var ErrDangling = errors.New("arena: view references freed memory")

// ErrDoubleFree 重复释放同一个块
var ErrDoubleFree = errors.New("arena: block freed twice")

// ErrForeignBlock 块不属于当前arena
var ErrForeignBlock = errors.New("arena: block not owned by this arena")

// ErrArenaClosed arena已关闭
var ErrArenaClosed = errors.New("arena closed")

// ErrInvalidSize 申请的大小非法
var ErrInvalidSize = errors.New("arena: invalid allocation size")
