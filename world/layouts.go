package world

import (
	"slices"

	"golang.org/x/exp/maps"
)

var layouts = map[string]string{
	"tinyMaze": `
%%%%%%%
%    P%
% %%% %
%  %  %
%%   %%
%. %%%%
%%%%%%%
`,
	"smallMaze": `
%%%%%%%%%%%%%%%%%%%%%%
% %%        % %      %
%    %%%%%% % %%%%%% %
%%%%%%     P  %      %
%    % %%%%%% %% %%%%%
% %%%% %         %   %
%        %%% %%%   % %
%%%%%%%%%%    %%%%%% %
%.         %%        %
%%%%%%%%%%%%%%%%%%%%%%
`,
	"testClassic": `
%%%%%
% . %
%.G.%
% . %
%. .%
%   %
%  .%
%   %
%P .%
%%%%%
`,
	"trappedClassic": `
%%%%%%%%
%   P G%
%G%%%%%%
%....  %
%%%%%%%%
`,
	"smallClassic": `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%
`,
}

func LayoutNames() []string {
	names := maps.Keys(layouts)
	slices.Sort(names)
	return names
}
