package ball

import "go.uber.org/zap/zapcore"

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (x *Radius) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("value", x.String())
	if x.form == finite {
		enc.AddUint64("mant", x.mant)
		enc.AddInt64("exp", x.exp)
	}
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (x *Ball) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("centre", x.c.String())
	enc.AddUint("prec", x.Prec())
	return enc.AddObject("radius", &x.r)
}
