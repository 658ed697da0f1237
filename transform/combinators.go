package transform

// Sequence returns a transformation that applies rules once, in order.
func Sequence(rules ...Transformation) Transformation {
	rules = append([]Transformation(nil), rules...)
	return Func(func(t Tree) (Tree, error) {
		return ApplySequentially(t, rules...)
	})
}

// EachChild returns a transformation that applies rule to every immediate
// child of a tree.
func EachChild(rule Transformation) Transformation {
	return Func(func(t Tree) (Tree, error) {
		return ApplyToEachChild(t, rule)
	})
}

// UntilUnchanged returns a transformation that applies rules until a fixed
// point is reached. See ApplyUntilUnchanged.
func UntilUnchanged(limit int, rules ...Transformation) Transformation {
	rules = append([]Transformation(nil), rules...)
	return Func(func(t Tree) (Tree, error) {
		return ApplyUntilUnchanged(t, limit, rules...)
	})
}

// PostOrder returns a transformation that applies rule to every node of a
// tree, children before their parent. Subtrees the rule leaves unchanged are
// shared with the input.
func PostOrder(rule Transformation) Transformation {
	var walk Func
	walk = func(t Tree) (Tree, error) {
		r, err := ApplyToEachChild(t, walk)
		if err != nil {
			return t, err
		}
		return rule.Transform(r)
	}
	return walk
}
