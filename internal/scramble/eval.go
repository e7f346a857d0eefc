package scramble

// file eval.go is the tree-walking evaluator. Control flow (break, continue,
// return) propagates as an execOutcome return value rather than through the
// error channel, keeping the real error channel reserved for actual
// failures; an outcome that escapes every loop or function call that could
// have caught it becomes one of the Break/Continue/Return errors instead.

type outcomeKind int

const (
	outNormal outcomeKind = iota
	outBreak
	outContinue
	outReturn
)

type execOutcome struct {
	kind  outcomeKind
	value Value
}

var normalOutcome = execOutcome{kind: outNormal}

// Evaluator walks a parsed program against a persistent Environment.
type Evaluator struct {
	Env *Environment
	IO  *IO
}

// NewEvaluator builds an Evaluator with the six builtins registered in its
// base scope.
func NewEvaluator(io *IO) *Evaluator {
	ev := &Evaluator{Env: NewEnvironment(), IO: io}
	registerBuiltins(ev.Env)
	return ev
}

// Run executes every statement of program in the Evaluator's current
// environment. A break, continue, or return that escapes the top level
// becomes the corresponding error.
func (ev *Evaluator) Run(program *BlockStmt) error {
	outcome, err := ev.execStatements(program.Statements)
	if err != nil {
		return err
	}
	switch outcome.kind {
	case outBreak:
		return Break{}
	case outContinue:
		return Continue{}
	case outReturn:
		return Return{}
	default:
		return nil
	}
}

func (ev *Evaluator) execStatements(stmts []*Statement) (execOutcome, error) {
	for _, stmt := range stmts {
		outcome, err := ev.execStatement(stmt)
		if err != nil {
			return execOutcome{}, err
		}
		if outcome.kind != outNormal {
			return outcome, nil
		}
	}
	return normalOutcome, nil
}

// execBlockScoped runs block in a fresh child scope that is popped on exit;
// used for if/elif/else bodies, which execute at most once per visit.
func (ev *Evaluator) execBlockScoped(block *BlockStmt) (execOutcome, error) {
	ev.Env.BeginScope()
	defer ev.Env.EndScope()
	return ev.execStatements(block.Statements)
}

func (ev *Evaluator) execStatement(stmt *Statement) (execOutcome, error) {
	switch {
	case stmt.Assign != nil:
		val, err := ev.evalExpr(stmt.Assign.Value)
		if err != nil {
			return execOutcome{}, err
		}
		ev.Env.SetVariable(stmt.Assign.Name, val)
		return normalOutcome, nil

	case stmt.CallStmt != nil:
		_, err := ev.evalCall(stmt.CallStmt.Call, stmt.Pos)
		return normalOutcome, err

	case stmt.Conditional != nil:
		return ev.execConditional(stmt.Conditional)

	case stmt.ForLoop != nil:
		return ev.execFor(stmt.ForLoop)

	case stmt.WhileLoop != nil:
		return ev.execWhile(stmt.WhileLoop)

	case stmt.Break != nil:
		return execOutcome{kind: outBreak}, nil

	case stmt.Continue != nil:
		return execOutcome{kind: outContinue}, nil

	case stmt.Return != nil:
		if stmt.Return.Value == nil {
			return execOutcome{kind: outReturn, value: ListValue(nil)}, nil
		}
		val, err := ev.evalExpr(stmt.Return.Value)
		if err != nil {
			return execOutcome{}, err
		}
		return execOutcome{kind: outReturn, value: val}, nil

	case stmt.FuncDef != nil:
		ev.Env.SetFunction(stmt.FuncDef.Name, &Function{
			Name:   stmt.FuncDef.Name,
			Params: stmt.FuncDef.Params,
			Body:   stmt.FuncDef.Body,
		})
		return normalOutcome, nil

	default:
		return normalOutcome, nil
	}
}

func (ev *Evaluator) execConditional(cond *ConditionalStmt) (execOutcome, error) {
	val, err := ev.evalExpr(cond.Cond)
	if err != nil {
		return execOutcome{}, err
	}
	if val.ToBool() {
		return ev.execBlockScoped(cond.Then)
	}
	for _, elif := range cond.Elifs {
		eval, err := ev.evalExpr(elif.Cond)
		if err != nil {
			return execOutcome{}, err
		}
		if eval.ToBool() {
			return ev.execBlockScoped(elif.Body)
		}
	}
	if cond.Else != nil {
		return ev.execBlockScoped(cond.Else)
	}
	return normalOutcome, nil
}

// execWhile pushes a single scope for the entire loop, not one per
// iteration, so a variable first assigned inside the body stays visible on
// the next iteration instead of being discarded when that iteration's scope
// would otherwise pop.
func (ev *Evaluator) execWhile(stmt *WhileLoopStmt) (execOutcome, error) {
	ev.Env.BeginScope()
	defer ev.Env.EndScope()

	for {
		cond, err := ev.evalExpr(stmt.Cond)
		if err != nil {
			return execOutcome{}, err
		}
		if !cond.ToBool() {
			return normalOutcome, nil
		}

		outcome, err := ev.execStatements(stmt.Body.Statements)
		if err != nil {
			return execOutcome{}, err
		}
		switch outcome.kind {
		case outBreak:
			return normalOutcome, nil
		case outReturn:
			return outcome, nil
		}
	}
}

// execFor follows the same single-scope-for-the-whole-loop rule as
// execWhile.
func (ev *Evaluator) execFor(stmt *ForLoopStmt) (execOutcome, error) {
	iterable, err := ev.evalExpr(stmt.Iterable)
	if err != nil {
		return execOutcome{}, err
	}
	items := iterable.ToList()

	ev.Env.BeginScope()
	defer ev.Env.EndScope()

	for _, item := range items {
		ev.Env.SetVariable(stmt.Var, item)

		outcome, err := ev.execStatements(stmt.Body.Statements)
		if err != nil {
			return execOutcome{}, err
		}
		switch outcome.kind {
		case outBreak:
			return normalOutcome, nil
		case outReturn:
			return outcome, nil
		}
	}
	return normalOutcome, nil
}

func (ev *Evaluator) evalExpr(expr *Expression) (Value, error) {
	switch {
	case expr.Constant != nil:
		return expr.Constant.Value, nil

	case expr.List != nil:
		vals := make([]Value, len(expr.List.Elements))
		for i, elem := range expr.List.Elements {
			v, err := ev.evalExpr(elem)
			if err != nil {
				return Value{}, err
			}
			vals[i] = v
		}
		return ListValue(vals), nil

	case expr.Binary != nil:
		left, err := ev.evalExpr(expr.Binary.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := ev.evalExpr(expr.Binary.Right)
		if err != nil {
			return Value{}, err
		}
		if expr.Binary.Op == OpMod && left.Kind() == KindString {
			return Format(left, right, expr.Pos)
		}
		return ApplyOperator(expr.Binary.Op, left, right), nil

	case expr.VarRef != nil:
		v, ok := ev.Env.GetVariable(expr.VarRef.Name)
		if !ok {
			return Value{}, Name{Pos: expr.Pos, Name: expr.VarRef.Name}
		}
		return v, nil

	case expr.Call != nil:
		return ev.evalCall(expr.Call, expr.Pos)

	default:
		return Value{}, nil
	}
}

func (ev *Evaluator) evalCall(call *CallExpr, pos Position) (Value, error) {
	fn, ok := ev.Env.GetFunction(call.Name)
	if !ok {
		return Value{}, Name{Pos: pos, Name: call.Name, IsFunc: true}
	}

	args := make([]Value, len(call.Args))
	for i, a := range call.Args {
		v, err := ev.evalExpr(a)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	if fn.Native != nil {
		if !fn.Variadic() && len(args) != fn.Arity() {
			return Value{}, Signature{Pos: pos, Name: call.Name, Want: fn.Arity(), Got: len(args)}
		}
		return fn.Native(ev, args)
	}

	if len(args) != len(fn.Params) {
		return Value{}, Signature{Pos: pos, Name: call.Name, Want: len(fn.Params), Got: len(args)}
	}

	ev.Env.BeginScope()
	for i, p := range fn.Params {
		ev.Env.SetVariable(p, args[i])
	}
	outcome, err := ev.execStatements(fn.Body.Statements)
	ev.Env.EndScope()
	if err != nil {
		return Value{}, err
	}

	switch outcome.kind {
	case outReturn:
		return outcome.value, nil
	case outBreak:
		return Value{}, Break{Pos: pos}
	case outContinue:
		return Value{}, Continue{Pos: pos}
	default:
		return ListValue(nil), nil
	}
}
